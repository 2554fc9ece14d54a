package question

import "strconv"

// QuestionsPerPage is the fixed page size for every listing endpoint.
const QuestionsPerPage = 10

// PageBounds converts a 1-based page number into a half-open [lower, upper)
// window over the full result set. It enforces no upper limit on page;
// out-of-range detection belongs to the caller.
func PageBounds(page int) (lower, upper int) {
	lower = (page - 1) * QuestionsPerPage
	upper = lower + QuestionsPerPage
	return lower, upper
}

// ParsePage interprets a raw page value from a query string. Missing,
// non-numeric, or non-positive values fall back to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// pageWindow slices one page out of the full result set. The result is nil
// when the page lies entirely past the end.
func pageWindow(questions []Question, page int) []Question {
	lower, upper := PageBounds(page)
	if lower >= len(questions) {
		return nil
	}
	if upper > len(questions) {
		upper = len(questions)
	}
	return questions[lower:upper]
}
