package fingerprint

import "regexp"

// Signature marks a technology as present when the page contains any of its
// markers. Version, when set, extracts the version from its first capture
// group. Adding a technology means adding a row.
type Signature struct {
	Name    string
	Markers []string
	Version *regexp.Regexp
}

var (
	wordpressVersion = regexp.MustCompile(`(?i)<meta name="generator" content="WordPress (\d+\.\d+(?:\.\d+)?)"\s*/?>`)
	jqueryVersion    = regexp.MustCompile(`(?i)jquery(?:\.min)?\.js\?ver=(\d+\.\d+\.\d+)`)
	bootstrapVersion = regexp.MustCompile(`(?i)bootstrap(?:\.min)?\.css\?ver=(\d+\.\d+\.\d+)`)
)

// Frontend signatures. Markers are plain, case sensitive substrings.
var Frontend = []Signature{
	{Name: "WordPress", Markers: []string{"wp-content"}, Version: wordpressVersion},
	{Name: "jQuery", Markers: []string{"jquery"}, Version: jqueryVersion},
	{Name: "Bootstrap", Markers: []string{"bootstrap"}, Version: bootstrapVersion},
	{Name: "Tailwind CSS", Markers: []string{"tailwind", "tailwindcss"}},
	{Name: "React", Markers: []string{"react", "ReactDOM"}},
	{Name: "Vue.js", Markers: []string{"vue", "Vue.js"}},
	{Name: "Angular", Markers: []string{"angular", "ng-"}},
	{Name: "HTML", Markers: []string{"<html", "<!DOCTYPE html>"}},
	{Name: "JavaScript", Markers: []string{"<script", ".js"}},
	{Name: "TypeScript", Markers: []string{"typescript", ".ts"}},
}

// Backend signatures. "php" matches any occurrence in the markup; false
// positives are accepted.
var Backend = []Signature{
	{Name: "Laravel", Markers: []string{"laravel_session"}},
	{Name: "PHP", Markers: []string{"php", ".php"}},
	{Name: "Node.js", Markers: []string{"node.js", "express"}},
	{Name: "Django", Markers: []string{"django", "csrfmiddlewaretoken"}},
	{Name: "Ruby on Rails", Markers: []string{"rails", "ruby"}},
}
