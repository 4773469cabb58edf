package settlement

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"frogcasino_backend/internal/config"
	"frogcasino_backend/internal/model"
	"frogcasino_backend/internal/repository"
	"frogcasino_backend/pkg/rng"
)

// zeroReader - бесконечный поток нулевых байт
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// memStore - балансы и леджер в памяти, единая точка мутаций для фейков
type memStore struct {
	mu       sync.Mutex
	balances map[int]decimal.Decimal
	txs      []model.Transaction
}

func newMemStore(balances map[int]decimal.Decimal) *memStore {
	return &memStore{balances: balances}
}

func (s *memStore) snapshot() ([]model.Transaction, map[int]decimal.Decimal) {
	txs := make([]model.Transaction, len(s.txs))
	copy(txs, s.txs)
	balances := make(map[int]decimal.Decimal, len(s.balances))
	for k, v := range s.balances {
		balances[k] = v
	}
	return txs, balances
}

func (s *memStore) transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	txs, _ := s.snapshot()
	return txs
}

func (s *memStore) balance(userID int) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[userID]
}

// memTxManager - транзакционность через снимок: при ошибке замыкания
// хранилище возвращается к состоянию на входе. Сам Do держит мьютекс
// на весь цикл, как строчная блокировка баланса в Postgres
type memTxManager struct {
	store *memStore
}

func (m *memTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	txs, balances := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.txs = txs
		m.store.balances = balances
		return err
	}
	return nil
}

func (m *memTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// memUserRepo - условное списание как в хранилище: минус не допускается.
// Debit и Credit вызываются только внутри Do и работают под его мьютексом,
// GetBalance - только снаружи и берет мьютекс сам
type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) GetBalance(_ context.Context, id int) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.balances[id]
	if !ok {
		return decimal.Zero, repository.ErrUserNotFound
	}
	return b, nil
}

func (r *memUserRepo) Debit(_ context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	b, ok := r.store.balances[id]
	if !ok || b.LessThan(amount) {
		return decimal.Zero, repository.ErrInsufficientFunds
	}
	nb := b.Sub(amount)
	r.store.balances[id] = nb
	return nb, nil
}

func (r *memUserRepo) Credit(_ context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	b, ok := r.store.balances[id]
	if !ok {
		return decimal.Zero, repository.ErrUserNotFound
	}
	nb := b.Add(amount)
	r.store.balances[id] = nb
	return nb, nil
}

type memTxRepo struct {
	store *memStore

	// failOnStatus - имитация сбоя хранилища на смене статуса
	failOnStatus model.TransactionStatus
}

func (r *memTxRepo) Create(_ context.Context, tx *model.Transaction) error {
	r.store.txs = append(r.store.txs, *tx)
	return nil
}

func (r *memTxRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.TransactionStatus) error {
	if r.failOnStatus != "" && status == r.failOnStatus {
		return errors.New("storage unavailable")
	}
	for i := range r.store.txs {
		if r.store.txs[i].ID == id {
			r.store.txs[i].Status = status
			return nil
		}
	}
	return repository.ErrTransactionNotFound
}

func (r *memTxRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Transaction, error) {
	for i := range r.store.txs {
		if r.store.txs[i].ID == id {
			tx := r.store.txs[i]
			return &tx, nil
		}
	}
	return nil, repository.ErrTransactionNotFound
}

func (r *memTxRepo) ListByUser(_ context.Context, userID int) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, tx := range r.store.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// Конфиги-заглушки

type stubGamesConfig map[string]model.Game

func (c stubGamesConfig) Game(id string) (model.Game, bool) {
	g, ok := c[id]
	return g, ok
}

func (c stubGamesConfig) Games() []model.Game {
	out := make([]model.Game, 0, len(c))
	for _, g := range c {
		out = append(out, g)
	}
	return out
}

type stubSlotConfig struct{}

func (stubSlotConfig) Symbols() []model.SlotSymbol {
	return []model.SlotSymbol{
		{ID: "🍒", Weight: decimal.NewFromInt(1)},
		{ID: "🍋", Weight: decimal.RequireFromString("1.5")},
		{ID: "🍊", Weight: decimal.NewFromInt(2)},
		{ID: "💎", Weight: decimal.NewFromInt(20)},
	}
}

type stubFrogConfig struct{}

func (stubFrogConfig) PaletteSize() int { return 12 }

func (stubFrogConfig) Paytable() map[int]decimal.Decimal {
	return map[int]decimal.Decimal{
		2: decimal.RequireFromString("1.5"),
		3: decimal.NewFromInt(5),
		4: decimal.NewFromInt(12),
		5: decimal.NewFromInt(25),
		6: decimal.NewFromInt(50),
	}
}

func testGames() stubGamesConfig {
	return stubGamesConfig{
		"slot": {
			ID: "slot", Type: model.GameTypeSlot,
			MinBet: decimal.NewFromInt(1), MaxBet: decimal.NewFromInt(1000), IsActive: true,
		},
		"roulette": {
			ID: "roulette", Type: model.GameTypeRoulette,
			MinBet: decimal.NewFromInt(1), MaxBet: decimal.NewFromInt(500), IsActive: true,
		},
		"frogjackpot": {
			ID: "frogjackpot", Type: model.GameTypeFrog,
			MinBet: decimal.NewFromInt(1), MaxBet: decimal.NewFromInt(100), IsActive: true,
		},
		"closed": {
			ID: "closed", Type: model.GameTypeSlot,
			MinBet: decimal.NewFromInt(1), MaxBet: decimal.NewFromInt(10), IsActive: false,
		},
	}
}

type fixture struct {
	store  *memStore
	txRepo *memTxRepo
	serv   *serv
}

func newFixture(balance decimal.Decimal, src rng.Source) *fixture {
	store := newMemStore(map[int]decimal.Decimal{1: balance})
	txRepo := &memTxRepo{store: store}
	s := NewSettlementService(
		testGames(),
		stubSlotConfig{},
		stubFrogConfig{},
		&memUserRepo{store: store},
		txRepo,
		src,
		&memTxManager{store: store},
		zap.NewNop(),
	)
	return &fixture{store: store, txRepo: txRepo, serv: s.(*serv)}
}

func TestPlaceWagerSlotWin(t *testing.T) {
	// Нулевые байты - три 🍒: тройка с весом 1 платит x3
	f := newFixture(decimal.NewFromInt(100), rng.NewFromReader(zeroReader{}))

	res, err := f.serv.PlaceWager(context.Background(), 1, model.Wager{
		GameID: "slot",
		Amount: decimal.NewFromInt(10),
		Params: model.SlotParams{},
	})
	if err != nil {
		t.Fatalf("PlaceWager returned error: %v", err)
	}

	if !res.IsWin {
		t.Fatal("expected a win")
	}
	if !res.Multiplier.Equal(decimal.NewFromInt(3)) {
		t.Errorf("multiplier = %s, want 3", res.Multiplier)
	}
	if !res.WinAmount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("win amount = %s, want 30", res.WinAmount)
	}
	if !res.Balance.Equal(decimal.NewFromInt(120)) {
		t.Errorf("balance = %s, want 120", res.Balance)
	}
	if !f.store.balance(1).Equal(res.Balance) {
		t.Errorf("stored balance %s differs from result balance %s", f.store.balance(1), res.Balance)
	}

	out, ok := res.Outcome.(model.SlotOutcome)
	if !ok {
		t.Fatalf("outcome has type %T, want SlotOutcome", res.Outcome)
	}
	if out.Reels != [3]string{"🍒", "🍒", "🍒"} {
		t.Errorf("reels = %v", out.Reels)
	}

	// Леджер: ставка и выигрыш, обе записи completed
	txs := f.store.transactions()
	if len(txs) != 2 {
		t.Fatalf("ledger has %d records, want 2", len(txs))
	}
	if txs[0].Type != model.TransactionBet || txs[0].Status != model.StatusCompleted {
		t.Errorf("bet record: type=%s status=%s", txs[0].Type, txs[0].Status)
	}
	if txs[1].Type != model.TransactionWin || txs[1].Status != model.StatusCompleted {
		t.Errorf("win record: type=%s status=%s", txs[1].Type, txs[1].Status)
	}
	if txs[0].ID != res.BetTxID {
		t.Error("bet transaction id does not match result")
	}
	if res.WinTxID == nil || txs[1].ID != *res.WinTxID {
		t.Error("win transaction id does not match result")
	}
}

func TestPlaceWagerRouletteLoss(t *testing.T) {
	// Байт 20 - число 20, черное: ставка на красное проигрывает
	f := newFixture(decimal.NewFromInt(100), rng.NewFromReader(bytes.NewReader([]byte{20})))

	res, err := f.serv.PlaceWager(context.Background(), 1, model.Wager{
		GameID: "roulette",
		Amount: decimal.NewFromInt(10),
		Params: model.RouletteParams{Bet: "red"},
	})
	if err != nil {
		t.Fatalf("PlaceWager returned error: %v", err)
	}

	if res.IsWin {
		t.Fatal("expected a loss")
	}
	if !res.WinAmount.IsZero() || !res.Multiplier.IsZero() {
		t.Errorf("loss must pay nothing: win=%s mult=%s", res.WinAmount, res.Multiplier)
	}
	if !res.Balance.Equal(decimal.NewFromInt(90)) {
		t.Errorf("balance = %s, want 90", res.Balance)
	}
	if res.WinTxID != nil {
		t.Error("loss produced a win transaction id")
	}

	txs := f.store.transactions()
	if len(txs) != 1 {
		t.Fatalf("ledger has %d records, want 1", len(txs))
	}
	if txs[0].Type != model.TransactionBet || txs[0].Status != model.StatusCompleted {
		t.Errorf("bet record: type=%s status=%s", txs[0].Type, txs[0].Status)
	}
}

func TestPlaceWagerFrogPartialMatch(t *testing.T) {
	// Система на нулевых байтах выбирает 0..5, у игрока совпадают три позиции
	f := newFixture(decimal.NewFromInt(100), rng.NewFromReader(zeroReader{}))

	res, err := f.serv.PlaceWager(context.Background(), 1, model.Wager{
		GameID: "frogjackpot",
		Amount: decimal.NewFromInt(10),
		Params: model.FrogParams{Colors: []int{0, 1, 2, 9, 10, 11}},
	})
	if err != nil {
		t.Fatalf("PlaceWager returned error: %v", err)
	}

	out, ok := res.Outcome.(model.FrogOutcome)
	if !ok {
		t.Fatalf("outcome has type %T, want FrogOutcome", res.Outcome)
	}
	if out.MatchCount != 3 {
		t.Fatalf("match count = %d, want 3", out.MatchCount)
	}
	if !res.Multiplier.Equal(decimal.NewFromInt(5)) {
		t.Errorf("multiplier = %s, want 5", res.Multiplier)
	}
	if !res.WinAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("win amount = %s, want 50", res.WinAmount)
	}
	if !res.Balance.Equal(decimal.NewFromInt(140)) {
		t.Errorf("balance = %s, want 140", res.Balance)
	}
}

func TestPlaceWagerInsufficientBalance(t *testing.T) {
	f := newFixture(decimal.NewFromInt(5), rng.NewFromReader(zeroReader{}))

	_, err := f.serv.PlaceWager(context.Background(), 1, model.Wager{
		GameID: "slot",
		Amount: decimal.NewFromInt(10),
		Params: model.SlotParams{},
	})
	if !errors.Is(err, model.ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}

	// Отказ чистый: ни записей в леджере, ни движения денег
	if n := len(f.store.transactions()); n != 0 {
		t.Errorf("ledger has %d records after rejection, want 0", n)
	}
	if !f.store.balance(1).Equal(decimal.NewFromInt(5)) {
		t.Errorf("balance = %s, want 5", f.store.balance(1))
	}
}

func TestPlaceWagerValidationRejections(t *testing.T) {
	cases := []struct {
		name  string
		wager model.Wager
		want  error
	}{
		{
			"unknown_game",
			model.Wager{GameID: "poker", Amount: decimal.NewFromInt(10), Params: model.SlotParams{}},
			model.ErrGameNotFound,
		},
		{
			"inactive_game",
			model.Wager{GameID: "closed", Amount: decimal.NewFromInt(5), Params: model.SlotParams{}},
			model.ErrGameNotFound,
		},
		{
			"zero_amount",
			model.Wager{GameID: "slot", Amount: decimal.Zero, Params: model.SlotParams{}},
			model.ErrInvalidBetAmount,
		},
		{
			"negative_amount",
			model.Wager{GameID: "slot", Amount: decimal.NewFromInt(-10), Params: model.SlotParams{}},
			model.ErrInvalidBetAmount,
		},
		{
			"too_many_decimals",
			model.Wager{GameID: "slot", Amount: decimal.RequireFromString("10.005"), Params: model.SlotParams{}},
			model.ErrInvalidBetAmount,
		},
		{
			"above_max_bet",
			model.Wager{GameID: "roulette", Amount: decimal.NewFromInt(501), Params: model.RouletteParams{Bet: "red"}},
			model.ErrInvalidBetAmount,
		},
		{
			"below_min_bet",
			model.Wager{GameID: "slot", Amount: decimal.RequireFromString("0.5"), Params: model.SlotParams{}},
			model.ErrInvalidBetAmount,
		},
		{
			"params_mismatch",
			model.Wager{GameID: "slot", Amount: decimal.NewFromInt(10), Params: model.RouletteParams{Bet: "red"}},
			model.ErrInvalidBetType,
		},
		{
			"nil_params",
			model.Wager{GameID: "slot", Amount: decimal.NewFromInt(10)},
			model.ErrInvalidBetType,
		},
		{
			"bad_roulette_bet",
			model.Wager{GameID: "roulette", Amount: decimal.NewFromInt(10), Params: model.RouletteParams{Bet: "37"}},
			model.ErrInvalidBetType,
		},
		{
			"bad_frog_selection",
			model.Wager{GameID: "frogjackpot", Amount: decimal.NewFromInt(10), Params: model.FrogParams{Colors: []int{0, 1, 2}}},
			model.ErrInvalidBetType,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(decimal.NewFromInt(100), rng.NewFromReader(zeroReader{}))

			_, err := f.serv.PlaceWager(context.Background(), 1, tc.wager)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if n := len(f.store.transactions()); n != 0 {
				t.Errorf("ledger has %d records after rejection, want 0", n)
			}
			if !f.store.balance(1).Equal(decimal.NewFromInt(100)) {
				t.Errorf("balance = %s, want 100", f.store.balance(1))
			}
		})
	}
}

func TestPlaceWagerRollbackAfterDebit(t *testing.T) {
	// Сбой хранилища после списания: транзакция откатывается целиком,
	// деньги и леджер как до ставки, наружу стабильный код
	f := newFixture(decimal.NewFromInt(100), rng.NewFromReader(zeroReader{}))
	f.txRepo.failOnStatus = model.StatusCompleted

	_, err := f.serv.PlaceWager(context.Background(), 1, model.Wager{
		GameID: "slot",
		Amount: decimal.NewFromInt(10),
		Params: model.SlotParams{},
	})
	if !errors.Is(err, model.ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}

	if !f.store.balance(1).Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance after rollback = %s, want 100", f.store.balance(1))
	}
	if n := len(f.store.transactions()); n != 0 {
		t.Errorf("ledger has %d records after rollback, want 0", n)
	}
}

func TestPlaceWagerOutcomeFailure(t *testing.T) {
	// Источник случайности иссякает после списания - тоже полный откат
	f := newFixture(decimal.NewFromInt(100), rng.NewFromReader(bytes.NewReader(nil)))

	_, err := f.serv.PlaceWager(context.Background(), 1, model.Wager{
		GameID: "slot",
		Amount: decimal.NewFromInt(10),
		Params: model.SlotParams{},
	})
	if !errors.Is(err, model.ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
	if !f.store.balance(1).Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance after rollback = %s, want 100", f.store.balance(1))
	}
	if n := len(f.store.transactions()); n != 0 {
		t.Errorf("ledger has %d records after rollback, want 0", n)
	}
}

func TestPlaceWagerReplayDeterminism(t *testing.T) {
	// Один и тот же поток байт - один и тот же исход и та же выплата
	bets := model.Wager{GameID: "roulette", Amount: decimal.NewFromInt(10), Params: model.RouletteParams{Bet: "17"}}

	var results []*model.WagerResult
	for i := 0; i < 2; i++ {
		f := newFixture(decimal.NewFromInt(100), rng.NewFromReader(bytes.NewReader([]byte{17})))
		res, err := f.serv.PlaceWager(context.Background(), 1, bets)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		results = append(results, res)
	}

	out0 := results[0].Outcome.(model.RouletteOutcome)
	out1 := results[1].Outcome.(model.RouletteOutcome)
	if out0 != out1 {
		t.Errorf("outcomes differ: %+v vs %+v", out0, out1)
	}
	if !results[0].WinAmount.Equal(results[1].WinAmount) {
		t.Errorf("payouts differ: %s vs %s", results[0].WinAmount, results[1].WinAmount)
	}
	// Число 17 на ставке "17" платит 36x
	if !results[0].WinAmount.Equal(decimal.NewFromInt(360)) {
		t.Errorf("win amount = %s, want 360", results[0].WinAmount)
	}
}

// Конкурентные ставки одного игрока: баланс не уходит в минус,
// итог сходится с леджером
func TestPlaceWagerConcurrent(t *testing.T) {
	start := decimal.NewFromInt(50)
	f := newFixture(start, rng.New())

	const workers = 20
	bet := decimal.NewFromInt(10)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.serv.PlaceWager(context.Background(), 1, model.Wager{
				GameID: "roulette",
				Amount: bet,
				Params: model.RouletteParams{Bet: "red"},
			})
			if err != nil && !errors.Is(err, model.ErrInsufficientBalance) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	final := f.store.balance(1)
	if final.IsNegative() {
		t.Fatalf("balance went negative: %s", final)
	}

	// Сверка с леджером: старт - ставки + выигрыши = итог
	expected := start
	for _, tx := range f.store.transactions() {
		if tx.Status != model.StatusCompleted {
			t.Errorf("ledger record %s left in status %s", tx.ID, tx.Status)
		}
		switch tx.Type {
		case model.TransactionBet:
			expected = expected.Sub(tx.Amount)
		case model.TransactionWin:
			expected = expected.Add(tx.Amount)
		}
	}
	if !final.Equal(expected) {
		t.Errorf("balance %s does not reconcile with ledger, expected %s", final, expected)
	}
}

var _ config.GamesConfig = stubGamesConfig{}
var _ config.SlotConfig = stubSlotConfig{}
var _ config.FrogConfig = stubFrogConfig{}
