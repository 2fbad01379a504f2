// Package gdlinear fits multivariate linear models to small, dense, in-memory
// tables by full-batch gradient descent.
//
// Features are standardized with statistics frozen at fit time, weights start
// as small uniform random values, and every epoch runs predict, loss, gradient
// and a simultaneous parameter update. Training runs for exactly the number of
// epochs the caller asks for.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gdlinear/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewVecDense(4, []float64{2, 4, 6, 8})
//
//	    model := linear.NewGDRegression(linear.WithSeed(42))
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := model.Train(500, 0.1); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := model.Predict(mat.NewDense(1, 1, []float64{5}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("%.2f\n", pred.At(0, 0)) // 10.00
//	}
//
// # Packages
//
//   - linear: the GDRegression engine, Forward and MSEGradient
//   - preprocessing: per-column mean and population std, Normalize, StandardScaler
//   - metrics: MSE (the training loss), RMSE, MAE, R²
//   - core/model: Params with a pure update step, lifecycle state, interfaces
//   - dataset: CSV loading, deterministic train/test split
//   - report: loss history, zerolog progress, PNG and HTML loss charts
//   - pkg/errors: structured errors and warnings
//   - pkg/log: structured logging
//
// The examples/advertising command trains on the advertising dataset
// (tv, radio, newspaper → sales).
package gdlinear
