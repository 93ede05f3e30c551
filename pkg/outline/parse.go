package outline

import "strings"

// Parse builds an outline tree from lines and returns its synthetic root.
func Parse(lines []string) *Node {
	root := newNode(RootLabel)
	stack := []*Node{root}

	for _, line := range lines {
		indent := leadingSpaces(line)
		depth := indent/2 + 1

		for len(stack) > depth {
			stack = stack[:len(stack)-1]
		}

		n := newNode(strings.Trim(line[indent:], " "))
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, n)
		stack = append(stack, n)
	}

	return root
}

// SplitLines splits raw outline text on newlines. Empty input has no lines;
// otherwise every newline separates two lines, so a trailing newline yields
// a final blank line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func leadingSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}
