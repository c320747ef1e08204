package dataset

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics of one column.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Describe summarizes both columns of the series. StdDev is the sample standard
// deviation and is zero for a single sample.
func (s *Series) Describe() (x, y Summary, err error) {
	if err = s.Validate(); err != nil {
		return Summary{}, Summary{}, err
	}

	if x, err = describe(s.X); err != nil {
		return Summary{}, Summary{}, fmt.Errorf("series %q x: %w", s.Name, err)
	}
	if y, err = describe(s.Y); err != nil {
		return Summary{}, Summary{}, fmt.Errorf("series %q y: %w", s.Name, err)
	}

	return x, y, nil
}

func describe(values []float64) (Summary, error) {
	data := stats.Float64Data(values)
	sum := Summary{Count: data.Len()}

	var err error
	if sum.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if sum.Min, err = data.Min(); err != nil {
		return Summary{}, err
	}
	if sum.Max, err = data.Max(); err != nil {
		return Summary{}, err
	}
	if sum.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if sum.Q25, err = data.Percentile(25); err != nil {
		return Summary{}, err
	}
	if sum.Q75, err = data.Percentile(75); err != nil {
		return Summary{}, err
	}
	if data.Len() > 1 {
		if sum.StdDev, err = data.StandardDeviationSample(); err != nil {
			return Summary{}, err
		}
	}

	return sum, nil
}
