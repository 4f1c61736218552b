package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/comptaflow/backend/internal/domain/vat"
)

type companyXML struct {
	LegalName string `xml:"LegalName"`
	IF        string `xml:"IF"`
	ICE       string `xml:"ICE"`
	RC        string `xml:"RC"`
}

type declarationXML struct {
	XMLName       xml.Name   `xml:"Root"`
	Company       companyXML `xml:"Company"`
	Period        string     `xml:"Period"`
	VATCollected  string     `xml:"VATCollected"`
	VATDeductible string     `xml:"VATDeductible"`
	VATNet        string     `xml:"VATNet"`
}

// MarshalDeclaration serializes the DGI declaration and appends a trailing
// <Signature> element holding the hex SHA-256 digest of the exact payload
// bytes that precede it. Verifiers recompute the digest over everything
// before the signature element.
func MarshalDeclaration(d vat.Declaration) ([]byte, error) {
	doc := declarationXML{
		Company: companyXML{
			LegalName: d.Company.LegalName,
			IF:        d.Company.IF,
			ICE:       d.Company.ICE,
			RC:        d.Company.RC,
		},
		Period:        d.Period,
		VATCollected:  d.Collected.StringFixed(2),
		VATDeductible: d.Deductible.StringFixed(2),
		VATNet:        d.Net.StringFixed(2),
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize declaration: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteString("\n")

	digest := sha256.Sum256(buf.Bytes())
	fmt.Fprintf(&buf, "<Signature>%s</Signature>\n", hex.EncodeToString(digest[:]))

	return buf.Bytes(), nil
}

// DeclarationFilename derives the export filename from the company ICE and
// a timestamp.
func DeclarationFilename(ice string, now time.Time) string {
	return fmt.Sprintf("%s-%s.xml", ice, now.Format("20060102-150405"))
}

// NewDeclarationArtifact serializes and names a declaration in one step
func NewDeclarationArtifact(d vat.Declaration, now time.Time) (Artifact, error) {
	data, err := MarshalDeclaration(d)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename:    DeclarationFilename(d.Company.ICE, now),
		ContentType: "application/xml",
		Data:        data,
	}, nil
}
