package cover_test

import (
	"fmt"

	"github.com/katalvlaran/evflip/cover"
)

// ExampleSolve covers a threshold of 30 units. The heavy cheap item plus the
// next-best small one beats every other pair.
func ExampleSolve() {
	items := []cover.Item{
		{ID: "A", Cost: 538, Weight: 25},
		{ID: "B", Cost: 7212, Weight: 7},
		{ID: "C", Cost: 4145, Weight: 4},
		{ID: "D", Cost: 366, Weight: 5},
		{ID: "E", Cost: 6766, Weight: 7},
	}
	res, err := cover.Solve(items, 30, cover.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	ids := make([]string, 0, len(res.Chosen))
	for _, i := range res.Chosen {
		ids = append(ids, items[i].ID)
	}
	fmt.Printf("status=%s cost=%d weight=%d chosen=%v lb=%.0f\n",
		res.Status, res.Cost, res.Weight, ids, res.LowerBound)
	// Output:
	// status=optimal cost=904 weight=30 chosen=[A D] lb=904
}
