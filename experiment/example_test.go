package experiment_test

import (
	"fmt"

	"github.com/zhanglipku/stimgen/experiment"
)

func ExampleStimulusName() {
	fmt.Println(experiment.StimulusName("p1", 3))
	fmt.Println(experiment.StimulusName("p1", 4))
	// Output:
	// p1_stimulus_3.wav
	// p1_stimulus_4.wav
}
