// Package metrics derives summary statistics from trade and balance data.
// Every function is a pure transform over its inputs.
package metrics

import "github.com/rustyeddy/tradelog/journal"

// ProfitFactorMax is the finite sentinel reported when a book has winning
// trades and zero gross losses.
const ProfitFactorMax = 999.0

// TradeStats summarizes a list of (already filtered) trades.
type TradeStats struct {
	TotalTrades  int
	Wins         int
	Losses       int
	TotalPL      float64
	WinRate      float64 // 0..1
	AvgWin       float64
	AvgLoss      float64
	LargestWin   float64
	LargestLoss  float64
	GrossWins    float64
	GrossLosses  float64 // negative or zero
	ProfitFactor float64
	TotalFees    float64
}

// Compute aggregates trade statistics. The empty list yields the zero
// value; no division by zero anywhere. Breakeven trades count as wins.
func Compute(trades []journal.Trade) TradeStats {
	var s TradeStats
	if len(trades) == 0 {
		return s
	}

	for _, t := range trades {
		s.TotalTrades++
		s.TotalPL += t.NetPL
		s.TotalFees += t.Fees

		if t.NetPL >= 0 {
			s.Wins++
			s.GrossWins += t.NetPL
			if t.NetPL > s.LargestWin {
				s.LargestWin = t.NetPL
			}
		} else {
			s.Losses++
			s.GrossLosses += t.NetPL
			if t.NetPL < s.LargestLoss {
				s.LargestLoss = t.NetPL
			}
		}
	}

	s.WinRate = float64(s.Wins) / float64(s.TotalTrades)
	if s.Wins > 0 {
		s.AvgWin = s.GrossWins / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = s.GrossLosses / float64(s.Losses)
	}
	s.ProfitFactor = profitFactor(s.GrossWins, s.GrossLosses)
	return s
}

// profitFactor is grossWins / |grossLosses|, clamped to a finite sentinel
// when there are no losses.
func profitFactor(grossWins, grossLosses float64) float64 {
	if grossLosses == 0 {
		if grossWins == 0 {
			return 0
		}
		return ProfitFactorMax
	}
	pf := grossWins / -grossLosses
	if pf > ProfitFactorMax {
		return ProfitFactorMax
	}
	return pf
}
