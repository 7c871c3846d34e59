package utils

// WeightedPoints converts a raw criterion score into its weighted
// contribution: score scaled by the criterion weight percentage.
func WeightedPoints(score float64, weight int) float64 {
	return score * float64(weight) / 100
}

// TotalScore sums the weighted contributions of every (judge, criterion) score
func TotalScore(points []float64) float64 {
	var total float64
	for _, p := range points {
		total += p
	}
	return total
}

// AverageScore divides a team's weighted total across the judges that scored it
func AverageScore(total float64, judgeCount int) float64 {
	if judgeCount == 0 {
		return 0
	}
	return total / float64(judgeCount)
}
