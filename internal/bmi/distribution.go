package bmi

// Bucket is one category's share of a dataset.
type Bucket struct {
	Category  Category
	Count     int
	Frequency float64
}

// Distribution holds exactly one bucket per category, in category order.
type Distribution struct {
	Total   int
	Buckets []Bucket
}

// Frequency returns the normalized frequency for the category index.
func (d Distribution) Frequency(index int) float64 {
	if index < 0 || index >= len(d.Buckets) {
		return 0
	}
	return d.Buckets[index].Frequency
}

// Sum adds up the bucket frequencies; 1 for any non-empty dataset.
func (d Distribution) Sum() float64 {
	var total float64
	for _, b := range d.Buckets {
		total += b.Frequency
	}
	return total
}

// Aggregate classifies every value and normalizes the counts by the number of
// values. The bucket order follows Categories() regardless of the counts. An
// empty input yields eight zero buckets.
func Aggregate(values []float64) Distribution {
	dist := Distribution{
		Total:   len(values),
		Buckets: make([]Bucket, len(categories)),
	}
	for i, c := range categories {
		dist.Buckets[i].Category = c
	}

	for _, v := range values {
		dist.Buckets[Classify(v).Index].Count++
	}

	if dist.Total == 0 {
		return dist
	}

	for i := range dist.Buckets {
		dist.Buckets[i].Frequency = float64(dist.Buckets[i].Count) / float64(dist.Total)
	}
	return dist
}
