package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// Source - источник случайности для игровых исходов.
// Внедряется в сервисы через конструктор, чтобы в тестах можно было
// подставить детерминированный поток байт
type Source interface {
	// Int возвращает равномерно распределенное целое в [min, max] включительно
	Int(min, max int) (int, error)
	// Float64 возвращает равномерно распределенное число в [0, 1)
	Float64() (float64, error)
}

// CryptoSource - реализация на криптостойком генераторе байт.
// Каждый вызов независим, состояния нет, безопасен для конкурентного использования
type CryptoSource struct {
	r io.Reader
}

// New - источник на crypto/rand. Для боевых исходов только он:
// исходы двигают реальные деньги и должны быть непредсказуемы
func New() *CryptoSource {
	return &CryptoSource{r: rand.Reader}
}

// NewFromReader - источник на произвольном ридере (для тестов)
func NewFromReader(r io.Reader) *CryptoSource {
	return &CryptoSource{r: r}
}

// Int - равномерное целое в [min, max] через rejection sampling.
// Наивное v % range дает перекос к младшим значениям (modulo bias),
// поэтому значения выше порога floor(256^k / range) * range отбрасываются
// и байты тянутся заново
func (s *CryptoSource) Int(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("rng: invalid range [%d, %d]", min, max)
	}
	if min == max {
		return min, nil
	}

	span := uint64(max-min) + 1

	// k - минимальное число байт, при котором 256^k >= span
	k := 1
	for ; k < 8; k++ {
		if span <= uint64(1)<<(8*uint(k)) {
			break
		}
	}

	// Порог отсечения - наибольшее кратное span, помещающееся в k байт
	var threshold uint64
	if k == 8 {
		threshold = (^uint64(0) / span) * span
	} else {
		pow := uint64(1) << (8 * uint(k))
		threshold = pow - pow%span
	}

	var buf [8]byte
	for {
		// Читаем k байт в младшую часть буфера, старшая остается нулевой
		if _, err := io.ReadFull(s.r, buf[8-k:]); err != nil {
			// Отказ криптоисточника невосстановим: тихий откат на более
			// слабый генератор недопустим
			return 0, fmt.Errorf("rng: secure source read failed: %w", err)
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v >= threshold {
			continue
		}
		return min + int(v%span), nil
	}
}

// Float64 - равномерное число в [0, 1) из 53 случайных бит
func (s *CryptoSource) Float64() (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		return 0, fmt.Errorf("rng: secure source read failed: %w", err)
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53), nil
}
