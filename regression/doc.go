// Package regression fits a straight line to paired samples with closed-form ordinary
// least squares and scores the fit.
//
// The line y = slope·x + intercept minimises the sum of squared residuals:
//
//	slope     = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//	intercept = (Σy − slope·Σx) / n
//
// Both are computed in a single pass over the samples. There is no iteration and no
// matrix solve.
//
// # Basic Usage
//
//	slope, intercept, err := regression.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	price := regression.Predict(95, slope, intercept)
//
// # Goodness of Fit
//
// Evaluate compares actual values with predictions:
//
//   - R² = 1 − SS_res/SS_tot (fraction of variance explained, at most 1)
//   - MSE = mean((actual − predicted)²)
//   - MAE = mean(|actual − predicted|)
//
// FitModel bundles the fit, the fitted values, residuals and metrics in one Model,
// and Model.Compare produces a per-sample actual-versus-predicted table.
//
// # Degenerate Input
//
// A fit over samples whose x values are all identical has no defined slope, and R²
// over actual values that are all identical has no defined variance. Both cases
// return errs.ErrDegenerateInput instead of propagating NaN or Inf.
package regression
