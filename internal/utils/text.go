package utils

import (
	"mime"
	"regexp"
	"strings"
)

// ExtractNamedGroup returns the text matched by the named group of re in input,
// or "" when re does not match or has no such group.
func ExtractNamedGroup(re *regexp.Regexp, groupName, input string) string {
	index := re.SubexpIndex(groupName)
	if index < 0 {
		return ""
	}

	match := re.FindStringSubmatch(input)
	if match == nil {
		return ""
	}

	return match[index]
}

// IsTextContentType reports whether a response body of this type is readable text:
// text/*, JSON or XML (including +json and +xml types) in UTF-8 or ASCII.
func IsTextContentType(contentType string) bool {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	switch charset := strings.ToLower(params["charset"]); charset {
	case "", "utf-8", "us-ascii":
	default:
		return false
	}

	switch {
	case strings.HasPrefix(mediaType, "text/"),
		mediaType == "application/json",
		mediaType == "application/xml",
		strings.HasSuffix(mediaType, "+json"),
		strings.HasSuffix(mediaType, "+xml"):
		return true
	default:
		return false
	}
}
