package render

const (
	// leftPanelPercent is the share of the terminal width used by the listing.
	leftPanelPercent = 40
	// chromeRows counts header, two rules, help line and notice row.
	chromeRows = 5
	// labelReserve is the room kept next to a label for the cursor marker.
	labelReserve = 4
	// previewReserve is the room kept next to a preview line for the separator.
	previewReserve = 2
	separatorWidth = 1
)

type layoutMetrics struct {
	leftWidth  int
	rightWidth int
	bodyRows   int
}

func computeLayout(w, h int) layoutMetrics {
	if w < 0 {
		w = 0
	}

	metrics := layoutMetrics{}
	metrics.leftWidth = w * leftPanelPercent / 100
	metrics.rightWidth = w - metrics.leftWidth - separatorWidth
	if metrics.rightWidth < 0 {
		metrics.rightWidth = 0
	}

	metrics.bodyRows = h - chromeRows
	if metrics.bodyRows < 0 {
		metrics.bodyRows = 0
	}
	return metrics
}
