package utils

// ImpliedWinProbability converts an American moneyline into a win
// probability. Positive lines are underdogs (100 / (ml + 100)), negative
// lines favorites (-ml / (-ml + 100)). A nil or zero moneyline yields
// nil, since 0 is not a valid American line.
func ImpliedWinProbability(moneyline *int) *float64 {
	if moneyline == nil || *moneyline == 0 {
		return nil
	}

	ml := float64(*moneyline)
	var p float64
	if ml > 0 {
		p = 100.0 / (ml + 100.0)
	} else {
		p = -ml / (-ml + 100.0)
	}
	return &p
}
