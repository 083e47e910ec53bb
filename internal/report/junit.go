// Package report renders class results into JUnit-style XML consumable by
// CI systems and report viewers.
package report

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"gtp/internal/domain"
)

const reportFileName = "junit.xml"

type testsuitesXML struct {
	XMLName  xml.Name       `xml:"testsuites"`
	Tests    int            `xml:"tests,attr"`
	Failures int            `xml:"failures,attr"`
	Suites   []testsuiteXML `xml:"testsuite"`
}

type testsuiteXML struct {
	Name     string        `xml:"name,attr"`
	ID       int64         `xml:"id,attr"`
	Tests    int           `xml:"tests,attr"`
	Failures int           `xml:"failures,attr"`
	Time     float64       `xml:"time,attr"`
	Cases    []testcaseXML `xml:"testcase"`
}

type testcaseXML struct {
	Name      string      `xml:"name,attr"`
	Classname string      `xml:"classname,attr"`
	Time      float64     `xml:"time,attr"`
	Failure   *failureXML `xml:"failure,omitempty"`
}

type failureXML struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

// JUnitWriter writes class results as a single JUnit XML document.
type JUnitWriter struct{}

// NewJUnitWriter creates a new JUnitWriter
func NewJUnitWriter() *JUnitWriter {
	return &JUnitWriter{}
}

// Write renders the classes into dir/junit.xml and returns the file path.
func (w *JUnitWriter) Write(classes []domain.ClassResult, dir string) (string, error) {
	doc := buildDocument(classes)

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(dir, reportFileName)
	content := append([]byte(xml.Header), data...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func buildDocument(classes []domain.ClassResult) testsuitesXML {
	doc := testsuitesXML{}

	for _, class := range classes {
		suite := testsuiteXML{
			Name:     class.Name,
			ID:       class.ID,
			Tests:    len(class.Records),
			Failures: class.FailureCount(),
		}

		for _, record := range class.Records {
			seconds := float64(record.DurationMillis) / 1000
			tc := testcaseXML{
				Name:      record.Name,
				Classname: class.Name,
				Time:      seconds,
			}
			if record.Failure != nil {
				tc.Failure = &failureXML{
					Message: record.Failure.Message,
					Content: record.Message,
				}
			}
			suite.Time += seconds
			suite.Cases = append(suite.Cases, tc)
		}

		doc.Tests += suite.Tests
		doc.Failures += suite.Failures
		doc.Suites = append(doc.Suites, suite)
	}

	return doc
}
