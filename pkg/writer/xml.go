package writer

import (
	"encoding/xml"
	"io"
)

// XML streams a well-formed XML document of settlement events to an
// underlying io.Writer — a file, or stdout when xmlToStdout is configured.
// No third-party XML encoder appears anywhere in the retrieved corpus, so
// this one writer is built on stdlib encoding/xml (see DESIGN.md).
type XML struct {
	enc *xml.Encoder
}

// NewXML creates an XML writer over out.
func NewXML(out io.Writer) *XML {
	enc := xml.NewEncoder(out)
	enc.Indent("", "  ")
	return &XML{enc: enc}
}

var rootElement = xml.Name{Local: "VericoreReport"}

func (x *XML) Begin() error {
	if err := x.enc.EncodeToken(xml.StartElement{Name: rootElement}); err != nil {
		return err
	}
	return x.enc.Flush()
}

type xmlValid struct {
	XMLName      xml.Name `xml:"valid"`
	Runtime      float64  `xml:"runtime,attr"`
	Source       string   `xml:"source,attr"`
	K            int      `xml:"k,attr"`
	ProofTime    float64  `xml:"proofTimeSeconds,attr"`
	MIVCTimedOut bool     `xml:"mivcTimedOut,attr,omitempty"`
	Properties   []string `xml:"property"`
	Invariants   int      `xml:"invariantCount,attr"`
	IVC          []string `xml:"ivcEquation,omitempty"`
}

func (x *XML) WriteValid(r ValidRecord) error {
	v := xmlValid{
		Runtime:    r.Runtime.Seconds(),
		Source:     string(r.Source),
		K:          r.K,
		ProofTime:  r.ProofTime.Seconds(),
		Properties: r.Properties,
		Invariants: len(r.Invariants),
		IVC:        r.IVC.Equations,
	}
	if err := x.enc.Encode(v); err != nil {
		return err
	}
	return x.enc.Flush()
}

type xmlInvalid struct {
	XMLName xml.Name `xml:"invalid"`
	Runtime float64  `xml:"runtime,attr"`
	Source  string   `xml:"source,attr"`
	Length  int      `xml:"length,attr"`
	Property string  `xml:"property,attr"`
	Steps   int      `xml:"steps,attr"`
}

func (x *XML) WriteInvalid(r InvalidRecord) error {
	v := xmlInvalid{
		Runtime:  r.Runtime.Seconds(),
		Source:   string(r.Source),
		Length:   r.Length,
		Property: r.Property,
		Steps:    len(r.Counterexample.Steps),
	}
	if err := x.enc.Encode(v); err != nil {
		return err
	}
	return x.enc.Flush()
}

type xmlUnknown struct {
	XMLName    xml.Name `xml:"unknown"`
	Runtime    float64  `xml:"runtime,attr"`
	BaseStep   int      `xml:"baseStep,attr"`
	Properties []string `xml:"property"`
}

func (x *XML) WriteUnknown(r UnknownRecord) error {
	v := xmlUnknown{
		Runtime:    r.Runtime.Seconds(),
		BaseStep:   r.BaseStep,
		Properties: r.Properties,
	}
	if err := x.enc.Encode(v); err != nil {
		return err
	}
	return x.enc.Flush()
}

type xmlBaseStep struct {
	XMLName    xml.Name `xml:"baseStep"`
	Runtime    float64  `xml:"runtime,attr"`
	Step       int      `xml:"step,attr"`
	Properties []string `xml:"property"`
}

func (x *XML) WriteBaseStep(r BaseStepRecord) error {
	v := xmlBaseStep{
		Runtime:    r.Runtime.Seconds(),
		Step:       r.Step,
		Properties: r.Properties,
	}
	if err := x.enc.Encode(v); err != nil {
		return err
	}
	return x.enc.Flush()
}

func (x *XML) End() error {
	if err := x.enc.EncodeToken(xml.EndElement{Name: rootElement}); err != nil {
		return err
	}
	return x.enc.Flush()
}
