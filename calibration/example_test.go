package calibration_test

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/tiacal/calibration"
)

func ExampleCalibrator_Run() {
	ref, _ := calibration.FitReference(calibration.Ximpedance22x)

	// 30 plateaus of 30 samples, stepping the input current by 2 µA.
	var values []float64
	for k := range 30 {
		v := ref.Estimate(-70e-6 + 2e-6*float64(k))
		for range 30 {
			values = append(values, v)
		}
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	cal, err := calibration.NewCalibrator(calibration.WithLogger(logger))
	if err != nil {
		fmt.Println(err)
		return
	}
	result, err := cal.Run(values)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("plateaus=%d fitted=%d\n", len(result.Points), result.SweepFit.N)
	for _, p := range result.Points[:3] {
		fmt.Printf("%.1f µA -> %.4f V\n", p.Current*1e6, p.Voltage)
	}
	// Output:
	// plateaus=30 fitted=10
	// -70.0 µA -> 1.6759 V
	// -68.0 µA -> 1.6320 V
	// -66.0 µA -> 1.5882 V
}
