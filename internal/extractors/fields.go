package extractors

import (
	"net/url"
	"strings"

	"github.com/mrjoshuak/matchexport/types"
)

const (
	sharedCMSeparator = " | "
	sharedCMUnit      = " cM"
)

// ParseMatchLink derives the owning test ID and the matched individual's ID
// from a match link such as /discoveryui-matches/list/match/<test>/match/<match>.
// The match ID is the last path segment and the test ID the third from last.
// Query strings, fragments and empty segments are ignored, so "/x/GUID2" has
// two segments and yields no test ID.
func ParseMatchLink(href string) (testID, matchID types.Field) {
	href = strings.TrimSpace(href)
	if href == "" {
		return types.Field{}, types.Field{}
	}

	path := href
	if u, err := url.Parse(href); err == nil {
		path = u.Path
	}

	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	if len(segments) == 0 {
		return types.Field{}, types.Field{}
	}
	matchID = types.Text(segments[len(segments)-1])
	if len(segments) >= 3 {
		testID = types.Text(segments[len(segments)-3])
	}
	return testID, matchID
}

// ParseSharedCM reduces shared-DNA text such as "23 cM | 1 segment" to the
// bare amount "23".
func ParseSharedCM(text string) string {
	text = strings.TrimSpace(text)
	if before, _, found := strings.Cut(text, sharedCMSeparator); found {
		text = before
	}
	text = strings.TrimSuffix(text, sharedCMUnit)
	return strings.TrimSpace(text)
}
