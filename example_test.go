package moonglide_test

import (
	"fmt"
	"time"

	"github.com/thurmanmarka/moonglide"
)

// ExampleNew shows the phase on a known date.
func ExampleNew() {
	s, err := moonglide.New(1609459200) // 2021-01-01T00:00:00Z
	if err != nil {
		panic(err)
	}

	fmt.Println(s.PhaseName())
	fmt.Printf("%.1f%% illuminated\n", s.Illumination()*100)
	// Output:
	// Full Moon
	// 96.4% illuminated
}

// ExampleSnapshot_Quarters prints the phase times around a date.
func ExampleSnapshot_Quarters() {
	s, err := moonglide.At(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		panic(err)
	}

	q, err := s.Quarters()
	if err != nil {
		panic(err)
	}
	for _, k := range moonglide.QuarterKinds() {
		fmt.Printf("%-18s %s\n", k, q.Time(k).Format("2006-01-02 15:04"))
	}
	// Output:
	// new_moon           2020-12-14 16:18
	// first_quarter      2020-12-21 23:42
	// full_moon          2020-12-30 03:30
	// last_quarter       2021-01-06 09:38
	// next_new_moon      2021-01-13 05:02
	// next_first_quarter 2021-01-20 21:03
	// next_full_moon     2021-01-28 19:18
	// next_last_quarter  2021-02-04 17:38
}

// ExampleNow demonstrates the everyday use: what does the Moon look like
// right now, and when is the next full moon?
func ExampleNow() {
	s, err := moonglide.Now()
	if err != nil {
		panic(err)
	}

	stage := "waxing"
	if !s.Waxing() {
		stage = "waning"
	}
	fmt.Printf("The moon is %.1f days old, and is therefore %s.\n", s.Age(), stage)
	fmt.Printf("It is %.0f km from the centre of the Earth.\n", s.Distance())

	if full, err := s.NextFullMoon(); err == nil {
		fmt.Println("Next full moon:", time.Unix(int64(full), 0).UTC().Format(time.RFC1123))
	}
	// Intentionally no // Output: block; the result depends on the clock.
}
