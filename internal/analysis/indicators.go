package analysis

// smaSeries computes the simple moving average column for the given period.
// The first period-1 positions are undefined.
func smaSeries(closes []float64, period int) []Value {
	out := make([]Value, len(closes))
	if period <= 0 {
		return out
	}
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= period {
			sum -= closes[i-period]
		}
		if i >= period-1 {
			out[i] = value(sum / float64(period))
		}
	}
	return out
}

// rsiSeries computes the Wilder-smoothed RSI column. The first period
// positions are undefined; defined values are bounded to [0,100].
func rsiSeries(closes []float64, period int) []Value {
	out := make([]Value, len(closes))
	if period <= 0 || len(closes) <= period {
		return out
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = value(rsiFrom(avgGain, avgLoss))

	p := float64(period)
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = value(rsiFrom(avgGain, avgLoss))
	}
	return out
}

func rsiFrom(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	rsi := 100.0 - 100.0/(1.0+rs)
	if rsi > 100 {
		rsi = 100
	}
	if rsi < 0 {
		rsi = 0
	}
	return rsi
}

// stochSeries computes the slow stochastic oscillator (kPeriod, smooth, dPeriod).
// Fast %K compares the close against the rolling high/low range; %K is the
// smooth-period average of fast %K and %D the dPeriod average of %K.
// A flat window (high == low) yields K=0 for that bar.
func stochSeries(highs, lows, closes []float64, kPeriod, smooth, dPeriod int) (k, d []Value) {
	n := len(closes)
	fast := make([]Value, n)
	for i := kPeriod - 1; i < n; i++ {
		hi, lo := highs[i], lows[i]
		for j := i - kPeriod + 1; j <= i; j++ {
			if highs[j] > hi {
				hi = highs[j]
			}
			if lows[j] < lo {
				lo = lows[j]
			}
		}
		if hi == lo {
			fast[i] = value(0)
			continue
		}
		fast[i] = value((closes[i] - lo) / (hi - lo) * 100.0)
	}
	k = smoothValues(fast, smooth)
	d = smoothValues(k, dPeriod)
	return k, d
}

// smoothValues averages the trailing period of defined values; positions
// whose window contains an undefined value stay undefined.
func smoothValues(in []Value, period int) []Value {
	out := make([]Value, len(in))
	if period <= 1 {
		copy(out, in)
		return out
	}
	for i := period - 1; i < len(in); i++ {
		sum := 0.0
		ok := true
		for j := i - period + 1; j <= i; j++ {
			if !in[j].Valid {
				ok = false
				break
			}
			sum += in[j].Val
		}
		if ok {
			out[i] = value(sum / float64(period))
		}
	}
	return out
}
