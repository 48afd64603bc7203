package export

import (
	"encoding/xml"
	"io"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
)

// JUnit XML structures for CI/CD integration.

type junitTestSuites struct {
	XMLName  xml.Name       `xml:"testsuites"`
	Name     string         `xml:"name,attr"`
	Tests    int            `xml:"tests,attr"`
	Failures int            `xml:"failures,attr"`
	Time     string         `xml:"time,attr"`
	Suites   []junitSuite   `xml:"testsuite"`
}

type junitSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Time     string          `xml:"time,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      string        `xml:"time,attr"`
	Failure   *junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}

// WriteJUnit emits findings as a JUnit test report. Critical and high
// severity findings are failures so CI gates trip on them.
func WriteJUnit(w io.Writer, findings []finding.Finding) error {
	var failures int
	cases := make([]junitTestCase, 0, len(findings))

	for i := range findings {
		f := &findings[i]
		className := f.Category
		if className == "" {
			className = "Security"
		}
		tc := junitTestCase{
			Name:      f.Title,
			ClassName: className,
			Time:      "0",
		}
		if f.Severity.IsFailure() {
			failures++
			remediation := f.Remediation
			if remediation == "" {
				remediation = "No remediation provided"
			}
			tc.Failure = &junitFailure{
				Message: f.Description,
				Type:    string(f.Severity),
				Content: remediation,
			}
		}
		cases = append(cases, tc)
	}

	doc := junitTestSuites{
		Name:     "Security Assessment",
		Tests:    len(findings),
		Failures: failures,
		Time:     "0",
		Suites: []junitSuite{{
			Name:     "Vulnerability Scan",
			Tests:    len(findings),
			Failures: failures,
			Time:     "0",
			Cases:    cases,
		}},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
