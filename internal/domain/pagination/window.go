package pagination

// Button is one slot of the page navigator: a page number or an ellipsis.
type Button struct {
	Page     int
	Ellipsis bool
	Current  bool
}

const windowRadius = 2

// Window computes the page buttons shown around current. The first and last
// pages stay reachable, with an ellipsis wherever a gap is skipped. Nothing is
// shown when there is a single page.
func Window(current, last int) []Button {
	if last <= 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > last {
		current = last
	}

	buttons := make([]Button, 0, 2*windowRadius+5)
	if current > windowRadius+1 {
		buttons = append(buttons, Button{Page: 1})
	}
	if current > windowRadius+2 {
		buttons = append(buttons, Button{Ellipsis: true})
	}

	for n := max(1, current-windowRadius); n <= min(last, current+windowRadius); n++ {
		buttons = append(buttons, Button{Page: n, Current: n == current})
	}

	if current < last-windowRadius {
		if current < last-windowRadius-1 {
			buttons = append(buttons, Button{Ellipsis: true})
		}
		buttons = append(buttons, Button{Page: last})
	}
	return buttons
}
