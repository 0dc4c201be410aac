package graph

import "sort"

// GreedyColor implements nx.greedy_color(strategy="largest_first"):
// order vertices by descending degree, then assign each the smallest
// color not already used by an already-colored neighbor.
func (g *Graph) GreedyColor() map[string]int {
	order := make([]string, 0, len(g.order))
	order = append(order, g.order...)
	sort.SliceStable(order, func(i, j int) bool {
		return g.Degree(order[i]) > g.Degree(order[j])
	})

	colors := make(map[string]int, len(order))
	for _, node := range order {
		used := map[int]struct{}{}
		for _, neighbor := range g.Neighbors(node) {
			if c, ok := colors[neighbor]; ok {
				used[c] = struct{}{}
			}
		}
		color := 0
		for {
			if _, taken := used[color]; !taken {
				break
			}
			color++
		}
		colors[node] = color
	}
	return colors
}

// ChromaticNumberEstimate returns the number of distinct colors the
// greedy coloring above used, an upper bound on the true chromatic
// number.
func (g *Graph) ChromaticNumberEstimate() int {
	colors := g.GreedyColor()
	if len(colors) == 0 {
		return 0
	}
	max := 0
	for _, c := range colors {
		if c > max {
			max = c
		}
	}
	return max + 1
}

// ColorGroups buckets node ids by their assigned color, ascending by
// color index so iteration order is deterministic.
func (g *Graph) ColorGroups() [][]string {
	colors := g.GreedyColor()
	byColor := map[int][]string{}
	maxColor := -1
	for node, c := range colors {
		byColor[c] = append(byColor[c], node)
		if c > maxColor {
			maxColor = c
		}
	}
	groups := make([][]string, 0, maxColor+1)
	for c := 0; c <= maxColor; c++ {
		nodes := byColor[c]
		sort.Strings(nodes)
		groups = append(groups, nodes)
	}
	return groups
}

// LargestComponent returns the size of the largest connected
// component in the graph.
func (g *Graph) LargestComponent() int {
	visited := map[string]struct{}{}
	largest := 0
	for node := range g.Nodes {
		if _, seen := visited[node]; seen {
			continue
		}
		size := 0
		stack := []string{node}
		visited[node] = struct{}{}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, neighbor := range g.Neighbors(n) {
				if _, seen := visited[neighbor]; !seen {
					visited[neighbor] = struct{}{}
					stack = append(stack, neighbor)
				}
			}
		}
		if size > largest {
			largest = size
		}
	}
	return largest
}

// AverageClusteringCoefficient returns the mean, over all nodes with
// degree >= 2, of the fraction of each node's neighbor pairs that are
// themselves connected.
func (g *Graph) AverageClusteringCoefficient() float64 {
	if len(g.Nodes) == 0 {
		return 0
	}
	var total float64
	counted := 0
	for node := range g.Nodes {
		neighbors := g.Neighbors(node)
		k := len(neighbors)
		if k < 2 {
			continue
		}
		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if _, ok := g.edges[neighbors[i]][neighbors[j]]; ok {
					links++
				}
			}
		}
		possible := k * (k - 1) / 2
		total += float64(links) / float64(possible)
		counted++
	}
	if counted == 0 {
		return 0
	}
	return total / float64(counted)
}
