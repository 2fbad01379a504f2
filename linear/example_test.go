package linear_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/linear"
)

func ExampleGDRegression() {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewVecDense(4, []float64{2, 4, 6, 8})

	reg := linear.NewGDRegression(linear.WithSeed(42))
	if err := reg.Fit(X, y); err != nil {
		fmt.Println(err)
		return
	}
	if err := reg.Train(500, 0.1); err != nil {
		fmt.Println(err)
		return
	}

	pred, err := reg.Predict(mat.NewDense(1, 1, []float64{5}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", pred.At(0, 0))
	// Output: 10.00
}

func ExampleForward() {
	X := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})
	pred, _ := linear.Forward(X, []float64{0.5, 1}, 1)
	fmt.Println(pred.RawVector().Data)
	// Output: [3.5 6.5]
}
