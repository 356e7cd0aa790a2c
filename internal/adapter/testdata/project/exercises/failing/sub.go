package failing

// I AM NOT DONE

func Sub(a, b int) int {
	return a + b
}
