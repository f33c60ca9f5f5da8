package plan

import "strings"

// Synonym predicates written into three-column synonym files.
const (
	OboHasSynonym        = "http://www.geneontology.org/formats/oboInOwl#hasSynonym"
	OboHasExactSynonym   = "http://www.geneontology.org/formats/oboInOwl#hasExactSynonym"
	OboHasRelatedSynonym = "http://www.geneontology.org/formats/oboInOwl#hasRelatedSynonym"
	OIOHasExactSynonym   = "OIO:hasExactSynonym"
)

// ListDelim separates values of multi-valued source fields.
const ListDelim = "|"

// Sentinels are source values that mean "no value".
var Sentinels = []string{"-", ""}

// positional returns Roman numeral column names I, II, ... for headerless
// inputs.
func positional(n int) []string {
	numerals := []string{
		"I", "II", "III", "IV", "V", "VI",
		"VII", "VIII", "IX", "X", "XI", "XII",
	}
	return numerals[:n]
}

func lastSegment(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}

func beforeColon(s string) string {
	head, _, _ := strings.Cut(s, ":")
	return head
}
