package tsp

// Sample is a named built-in instance.
type Sample struct {
	Name  string
	Costs [][]Cost
	Start int
}

// Samples returns fresh copies of the built-in instances.
//
//   - "symmetric-4": classic 4-city instance, optimum 80.
//   - "sparse-5": 5 nodes with missing edges, optimum 27.
func Samples() []Sample {
	return []Sample{
		{
			Name: "symmetric-4",
			Costs: [][]Cost{
				{Inf, 10, 15, 20},
				{10, Inf, 35, 25},
				{15, 35, Inf, 30},
				{20, 25, 30, Inf},
			},
		},
		{
			Name: "sparse-5",
			Costs: [][]Cost{
				{Inf, 2, Inf, 6, Inf},
				{2, Inf, 3, 8, 5},
				{Inf, 3, Inf, Inf, 7},
				{6, 8, Inf, Inf, 9},
				{Inf, 5, 7, 9, Inf},
			},
		},
	}
}
