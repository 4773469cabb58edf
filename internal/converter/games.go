package converter

import (
	"github.com/shopspring/decimal"

	dto "frogcasino_backend/internal/api/dto/games"
	"frogcasino_backend/internal/game/roulette"
	"frogcasino_backend/internal/game/slot"
	"frogcasino_backend/internal/model"
)

// ToWager - собирает ставку из запроса. Вид параметров определяется по
// заполненным полям, соответствие типу игры проверяет движок
func ToWager(gameID string, req dto.PlaceBetRequest) (model.Wager, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return model.Wager{}, model.ErrInvalidBetAmount
	}

	var params model.BetParams
	switch {
	case len(req.SelectedColors) > 0:
		params = model.FrogParams{Colors: req.SelectedColors}
	case req.Bet != "":
		params = model.RouletteParams{Bet: req.Bet}
	default:
		params = model.SlotParams{}
	}

	return model.Wager{
		GameID: gameID,
		Amount: amount,
		Params: params,
	}, nil
}

func ToPlaceBetResponse(res model.WagerResult) dto.PlaceBetResponse {
	out := dto.PlaceBetResponse{
		Outcome:    toOutcome(res.Outcome),
		IsWin:      res.IsWin,
		Multiplier: res.Multiplier.String(),
		WinAmount:  res.WinAmount.String(),
		Balance:    res.Balance.String(),
		BetTxID:    res.BetTxID.String(),
	}
	if res.WinTxID != nil {
		id := res.WinTxID.String()
		out.WinTxID = &id
	}
	return out
}

func toOutcome(outcome model.Outcome) dto.Outcome {
	switch o := outcome.(type) {
	case model.SlotOutcome:
		return dto.Outcome{Reels: o.Reels[:]}
	case model.RouletteOutcome:
		n := o.Number
		isEven, isOdd, isLow, isHigh := o.IsEven, o.IsOdd, o.IsLow, o.IsHigh
		return dto.Outcome{
			Number: &n,
			Color:  o.Color,
			IsEven: &isEven,
			IsOdd:  &isOdd,
			IsLow:  &isLow,
			IsHigh: &isHigh,
		}
	case model.FrogOutcome:
		matches := o.MatchCount
		return dto.Outcome{
			Colors:     o.Colors,
			MatchCount: &matches,
		}
	default:
		return dto.Outcome{}
	}
}

// ToGamesResponse - список игр для лобби, неактивные не отдаются
func ToGamesResponse(games []model.Game) dto.GamesResponse {
	out := dto.GamesResponse{Games: make([]dto.GameInfo, 0, len(games))}
	for _, g := range games {
		if !g.IsActive {
			continue
		}
		out.Games = append(out.Games, dto.GameInfo{
			ID:     g.ID,
			Type:   string(g.Type),
			MinBet: g.MinBet.String(),
			MaxBet: g.MaxBet.String(),
		})
	}
	return out
}

// ToPaytableResponse - таблица выплат игры: ровно те же значения, по
// которым движок считает выигрыш
func ToPaytableResponse(game model.Game, symbols []model.SlotSymbol, frogPaytable map[int]decimal.Decimal) dto.PaytableResponse {
	out := dto.PaytableResponse{
		GameID: game.ID,
		Type:   string(game.Type),
		MinBet: game.MinBet.String(),
		MaxBet: game.MaxBet.String(),
	}

	switch game.Type {
	case model.GameTypeSlot:
		for _, s := range symbols {
			out.Slot = append(out.Slot, dto.SlotSymbol{
				ID:         s.ID,
				Weight:     s.Weight.String(),
				TripleMult: s.Weight.Mul(slot.ThreeOfAKindFactor).String(),
				PairMult:   s.Weight.Mul(slot.PairFactor).String(),
			})
		}
	case model.GameTypeRoulette:
		outside := roulette.OutsidePayout.String()
		out.Roulette = map[string]string{
			"red": outside, "black": outside,
			"even": outside, "odd": outside,
			"low": outside, "high": outside,
			"straight": roulette.StraightPayout.String(),
		}
	case model.GameTypeFrog:
		out.Frog = make(map[int]string, len(frogPaytable))
		for matches, mult := range frogPaytable {
			out.Frog[matches] = mult.String()
		}
	}

	return out
}
