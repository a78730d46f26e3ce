package ui

// Fixed rows around the scrolling content.
const (
	headerRows  = 1
	sectionRows = 1
	footerRows  = 1
	chromeRows  = headerRows + sectionRows + footerRows

	// contentPadding is the horizontal padding either side of the viewport.
	contentPadding = 2
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops the
	// logo and the footer drops the key hints.
	LayoutCompactWidth = 60

	// maxContentWidth keeps prose readable on very wide terminals.
	maxContentWidth = 110
)

// alertDuration is how long a bubbleup notice stays on screen. bubbleup
// multiplies it by time.Second itself, so this is a count of seconds.
const alertDuration = 3
