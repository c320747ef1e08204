// Package chart renders Simpson and regression figures to PNG files with gonum/plot.
//
// RenderSimpson draws the integrand with its shaded area, the Simpson parabola
// segmentation, the convergence of the absolute error on a log scale and the sample
// points coloured by their Simpson coefficient. RenderRegression draws the fitted
// line over the samples, the residuals and actual against predicted values.
package chart
