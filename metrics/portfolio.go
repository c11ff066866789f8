package metrics

import "math"

// tradingDaysPerYear annualizes period returns for the simplified Sharpe.
const tradingDaysPerYear = 252

// PortfolioStats summarizes account-level performance.
type PortfolioStats struct {
	StartingCapital float64
	CurrentBalance  float64
	TotalReturn     float64
	ReturnPct       float64 // fraction of starting capital
	MaxDrawdown     float64 // peak-to-trough fraction, 0..1
	Sharpe          float64
}

// ComputePortfolio derives account metrics from the capital baseline and an
// optional time-ordered balance history. Zero starting capital yields zero
// returns rather than a division error.
func ComputePortfolio(startingCapital, currentBalance float64, history []float64) PortfolioStats {
	s := PortfolioStats{
		StartingCapital: startingCapital,
		CurrentBalance:  currentBalance,
		TotalReturn:     currentBalance - startingCapital,
	}
	if startingCapital != 0 {
		s.ReturnPct = s.TotalReturn / startingCapital
	}
	s.MaxDrawdown = MaxDrawdown(history)
	s.Sharpe = Sharpe(history)
	return s
}

// MaxDrawdown is the largest peak-to-trough decline over the balance
// series, as a fraction of the peak.
func MaxDrawdown(history []float64) float64 {
	var peak, maxDD float64
	for _, b := range history {
		if b > peak {
			peak = b
		}
		if peak > 0 {
			dd := (peak - b) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// Sharpe is a simplified annualized Sharpe ratio over period-to-period
// simple returns of the balance series. Fewer than two usable periods, or
// zero variance, yields zero.
func Sharpe(history []float64) float64 {
	var returns []float64
	for i := 1; i < len(history); i++ {
		if history[i-1] == 0 {
			continue
		}
		returns = append(returns, (history[i]-history[i-1])/history[i-1])
	}
	if len(returns) < 2 {
		return 0
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns) - 1)
	if variance == 0 {
		return 0
	}

	return mean / math.Sqrt(variance) * math.Sqrt(tradingDaysPerYear)
}
