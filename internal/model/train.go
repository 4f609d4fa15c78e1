package model

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"
)

// TrainOptions tunes the fit. Zero values take defaults.
type TrainOptions struct {
	TestSize     float64
	Seed         int64
	MaxIter      int
	LearningRate float64
	C            float64
	Now          func() time.Time
}

const (
	defaultTestSize     = 0.2
	defaultSeed         = 42
	defaultMaxIter      = 500
	defaultLearningRate = 0.1
	defaultC            = 1.0
)

func (o TrainOptions) withDefaults() TrainOptions {
	if o.TestSize <= 0 || o.TestSize >= 1 {
		o.TestSize = defaultTestSize
	}
	if o.Seed == 0 {
		o.Seed = defaultSeed
	}
	if o.MaxIter <= 0 {
		o.MaxIter = defaultMaxIter
	}
	if o.LearningRate <= 0 {
		o.LearningRate = defaultLearningRate
	}
	if o.C <= 0 {
		o.C = defaultC
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Train fits a standardised L2 logistic regression and evaluates it on a held-out split.
func Train(ds *Dataset, opts TrainOptions) (*Bundle, error) {
	if ds == nil || len(ds.Rows) < 2 {
		return nil, errors.New("need at least two rows to train")
	}
	opts = opts.withDefaults()

	rows := append([]Row(nil), ds.Rows...)
	rng := rand.New(rand.NewSource(opts.Seed))
	rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })

	testN := int(math.Ceil(float64(len(rows)) * opts.TestSize))
	if testN >= len(rows) {
		testN = len(rows) - 1
	}
	test, train := rows[:testN], rows[testN:]

	cols := append([]string(nil), FeatureColumns...)
	xTrain, yTrain := matrix(train, cols)
	scaler := fitScaler(xTrain)
	standardise(xTrain, scaler)

	coef, intercept := gradientDescent(xTrain, yTrain, opts)

	b := &Bundle{
		FeatureCols:   cols,
		LabelColumn:   LabelColumn,
		Scaler:        scaler,
		Coef:          coef,
		Intercept:     intercept,
		TeamStatsHome: teamAverages(ds.Rows, homeColumn, func(r Row) string { return r.HomeTeam }),
		TeamStatsAway: teamAverages(ds.Rows, awayColumn, func(r Row) string { return r.AwayTeam }),
		TrainedAt:     opts.Now().UTC(),
	}

	probs := make([]float64, len(test))
	labels := make([]float64, len(test))
	correct := 0
	for i, r := range test {
		p, err := b.PredictProba(r.features(cols))
		if err != nil {
			return nil, err
		}
		probs[i] = p
		labels[i] = r.Label
		if (p >= 0.5) == (r.Label >= 0.5) {
			correct++
		}
	}
	b.Metrics = Metrics{
		Accuracy:  float64(correct) / float64(len(test)),
		AUC:       rocAUC(labels, probs),
		TrainRows: len(train),
		TestRows:  len(test),
	}
	return b, nil
}

func matrix(rows []Row, cols []string) ([][]float64, []float64) {
	x := make([][]float64, len(rows))
	y := make([]float64, len(rows))
	for i, r := range rows {
		x[i] = r.features(cols)
		y[i] = r.Label
	}
	return x, y
}

// fitScaler uses the population standard deviation; constant columns get scale 1.
func fitScaler(x [][]float64) Scaler {
	n := len(x[0])
	mean := make([]float64, n)
	scale := make([]float64, n)
	for _, row := range x {
		for j, v := range row {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(len(x))
	}
	for _, row := range x {
		for j, v := range row {
			d := v - mean[j]
			scale[j] += d * d
		}
	}
	for j := range scale {
		scale[j] = math.Sqrt(scale[j] / float64(len(x)))
		if scale[j] == 0 {
			scale[j] = 1
		}
	}
	return Scaler{Mean: mean, Scale: scale}
}

func standardise(x [][]float64, s Scaler) {
	for _, row := range x {
		for j := range row {
			row[j] = (row[j] - s.Mean[j]) / s.Scale[j]
		}
	}
}

// gradientDescent minimises mean log loss plus ||w||^2/(2*C*n); the intercept is not penalised.
func gradientDescent(x [][]float64, y []float64, opts TrainOptions) ([]float64, float64) {
	n := float64(len(x))
	w := make([]float64, len(x[0]))
	var b float64
	grad := make([]float64, len(w))
	for iter := 0; iter < opts.MaxIter; iter++ {
		for j := range grad {
			grad[j] = 0
		}
		var gradB float64
		for i, row := range x {
			err := sigmoid(dot(w, row)+b) - y[i]
			for j, v := range row {
				grad[j] += err * v
			}
			gradB += err
		}
		for j := range w {
			w[j] -= opts.LearningRate * (grad[j]/n + w[j]/(opts.C*n))
		}
		b -= opts.LearningRate * gradB / n
	}
	return w, b
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// rocAUC is the Mann-Whitney statistic with average ranks for ties. 0 when one class is absent.
func rocAUC(labels, scores []float64) float64 {
	type pair struct {
		score float64
		label float64
	}
	pairs := make([]pair, len(labels))
	var pos, neg float64
	for i := range labels {
		pairs[i] = pair{scores[i], labels[i]}
		if labels[i] >= 0.5 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return 0
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].score < pairs[j].score })
	var rankSum float64
	for i := 0; i < len(pairs); {
		j := i
		for j < len(pairs) && pairs[j].score == pairs[i].score {
			j++
		}
		avgRank := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			if pairs[k].label >= 0.5 {
				rankSum += avgRank
			}
		}
		i = j
	}
	return (rankSum - pos*(pos+1)/2) / (pos * neg)
}

// homeColumn keeps every column FeatureVector may read from the home table.
func homeColumn(col string) bool {
	return col != LabelColumn && !strings.Contains(col, "_away")
}

func awayColumn(col string) bool {
	return strings.Contains(col, "_away")
}

func teamAverages(rows []Row, keep func(string) bool, team func(Row) string) map[string]TeamStats {
	sums := map[string]TeamStats{}
	counts := map[string]map[string]int{}
	for _, r := range rows {
		name := team(r)
		if name == "" {
			continue
		}
		if sums[name] == nil {
			sums[name] = TeamStats{}
			counts[name] = map[string]int{}
		}
		for col, v := range r.Values {
			if !keep(col) {
				continue
			}
			sums[name][col] += v
			counts[name][col]++
		}
	}
	for name, stats := range sums {
		for col := range stats {
			stats[col] /= float64(counts[name][col])
		}
	}
	return sums
}
