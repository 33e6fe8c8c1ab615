// Command reportgen renders a sample compliance report to a PDF file. It
// exercises every layout primitive and is the quickest way to eyeball a
// format change:
//
//	reportgen -out report.pdf -format v3 -kind audit -watermark DRAFT
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/paperstack/reportkit/format"
	"github.com/paperstack/reportkit/layout"
	"github.com/paperstack/reportkit/pdfcanvas"
	"github.com/paperstack/reportkit/stamp"
	"github.com/paperstack/reportkit/table"
)

func main() {
	var (
		out        = flag.String("out", "report.pdf", "output PDF path")
		formatTag  = flag.String("format", "v3", "report format version (v2, v3)")
		kind       = flag.String("kind", "audit", "report kind: audit, analytics or receipt")
		watermark  = flag.String("watermark", "", "optional watermark text")
		stationery = flag.String("stationery", "", "optional letterhead PDF to underlay")
	)
	flag.Parse()

	f, err := format.Version(*formatTag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reportgen: %v\n", err)
		os.Exit(1)
	}

	var opts []pdfcanvas.Option
	if *stationery != "" {
		opts = append(opts, pdfcanvas.WithStationery(*stationery, 1))
	}
	canvas := pdfcanvas.New(f.PageWidth, f.PageHeight, opts...)
	ctx := layout.NewContext(canvas, canvas, f)

	switch *kind {
	case "audit":
		buildAudit(ctx)
	case "analytics":
		buildAnalytics(ctx)
	case "receipt":
		buildReceipt(ctx)
	default:
		fmt.Fprintf(os.Stderr, "reportgen: unknown kind %q\n", *kind)
		os.Exit(1)
	}

	if *watermark != "" {
		ctx.StampWatermark(*watermark, "Not an official record")
	}
	ctx.FinalizeFooters(layout.Footer{
		Label: "Confidential, distribution restricted",
		Brand: "Paperstack",
	})

	file, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reportgen: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()
	if err := canvas.Output(file); err != nil {
		fmt.Fprintf(os.Stderr, "reportgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d pages)\n", *out, ctx.PageCount())
}

type auditEvent struct {
	ID, When, Actor, Action, Outcome string
}

func buildAudit(ctx *layout.Context) {
	ctx.DrawHeader(layout.Header{
		Eyebrow:  "Compliance",
		Title:    "Quarterly Access Audit",
		Subtitle: "Production environment, all tenants",
		Brand:    "Paperstack",
		Meta:     "Q2 2026 · Generated 2026-08-31",
	})

	ctx.DrawKeyValue("Scope", "All privileged accounts across production clusters")
	ctx.DrawKeyValue("Auditor", "Internal Security, review board sign-off pending")
	ctx.DrawKeyValue("Period", "2026-04-01 through 2026-06-30")
	ctx.Advance(ctx.Format().Layout.SectionGap)

	ctx.DrawMetricGrid([]layout.Metric{
		{Label: "Events reviewed", Value: "48,112"},
		{Label: "Policy violations", Value: "3"},
		{Label: "Accounts revoked", Value: "14"},
		{Label: "Mean review latency", Value: "2.1 d"},
	}, 4)

	ctx.DrawSection("Findings", "Events flagged by the automated policy engine")
	ctx.DrawParagraph("Three events violated the standing access policy. All three " +
		"involved service accounts retaining elevated grants past their recorded " +
		"expiry. Remediation completed within the contractual window; the affected " +
		"grants were revoked and re-issued under the rotation schedule.")

	events := []auditEvent{
		{"EV-9021", "2026-04-03 09:12", "svc-deploy", "role.grant", "expired grant"},
		{"EV-9144", "2026-04-19 22:40", "svc-backup", "bucket.read", "ok"},
		{"EV-9310", "2026-05-02 14:05", "j.alvarez", "role.grant", "ok"},
		{"EV-9377", "2026-05-11 03:58", "svc-etl", "db.export", "expired grant"},
		{"EV-9562", "2026-06-27 16:33", "m.chen", "role.revoke", "ok"},
	}
	table.New(
		table.Column[auditEvent]{Key: "id", Header: "Event", Semantic: table.SemanticIdentifier, Value: func(e auditEvent) string { return e.ID }},
		table.Column[auditEvent]{Key: "when", Header: "Timestamp", Semantic: table.SemanticDatetime, Value: func(e auditEvent) string { return e.When }},
		table.Column[auditEvent]{Key: "actor", Header: "Actor", Value: func(e auditEvent) string { return e.Actor }},
		table.Column[auditEvent]{Key: "action", Header: "Action", Semantic: table.SemanticIdentifier, Value: func(e auditEvent) string { return e.Action }},
		table.Column[auditEvent]{Key: "outcome", Header: "Outcome", Semantic: table.SemanticStatus, Value: func(e auditEvent) string { return e.Outcome }},
	).Preset(format.TableEvidence).Draw(ctx, events)

	drawVerification(ctx, "paperstack:audit:q2-2026:7f3a")
}

type usageRow struct {
	Tenant, Reports, Pages, Delta string
}

func buildAnalytics(ctx *layout.Context) {
	ctx.DrawHeader(layout.Header{
		Eyebrow: "Analytics",
		Title:   "Monthly Generation Summary",
		Brand:   "Paperstack",
		Meta:    "August 2026",
	})

	ctx.DrawMetricGrid([]layout.Metric{
		{Label: "Reports generated", Value: "12,408"},
		{Label: "Pages rendered", Value: "96,311"},
		{Label: "p95 render time", Value: "840 ms"},
	}, 3)

	ctx.DrawSection("Per-tenant volume", "")
	rows := []usageRow{
		{"acme-corp", "4,120", "31,002", "+8%"},
		{"globex", "2,914", "22,450", "-2%"},
		{"initech", "2,201", "18,774", "+14%"},
		{"umbrella", "1,877", "14,092", "+3%"},
		{"hooli", "1,296", "9,993", "+21%"},
	}
	table.New(
		table.Column[usageRow]{Key: "tenant", Header: "Tenant", Semantic: table.SemanticIdentifier, Value: func(r usageRow) string { return r.Tenant }},
		table.Column[usageRow]{Key: "reports", Header: "Reports", Semantic: table.SemanticMetric, Value: func(r usageRow) string { return r.Reports }},
		table.Column[usageRow]{Key: "pages", Header: "Pages", Semantic: table.SemanticMetric, Value: func(r usageRow) string { return r.Pages }},
		table.Column[usageRow]{Key: "delta", Header: "MoM", Semantic: table.SemanticMetric, Value: func(r usageRow) string { return r.Delta }},
	).Preset(format.TableAnalytics).Draw(ctx, rows)
}

type deliveryRow struct {
	Ref, Recipient, Channel, Status string
}

func buildReceipt(ctx *layout.Context) {
	ctx.DrawHeader(layout.Header{
		Eyebrow:  "Delivery",
		Title:    "Stack Delivery Receipt",
		Subtitle: "Batch 2026-08-30T22:00Z",
		Brand:    "Paperstack",
	})

	ctx.DrawKeyValue("Batch", "b-20260830-2200")
	ctx.DrawKeyValue("Initiated by", "scheduler")
	ctx.Advance(ctx.Format().Layout.SectionGap)

	ctx.DrawSection("Deliveries", "")
	rows := []deliveryRow{
		{"d-88412", "compliance@acme-corp.example", "email", "delivered"},
		{"d-88413", "sftp://globex.example/drops", "sftp", "delivered"},
		{"d-88414", "audit@initech.example", "email", "bounced"},
	}
	table.New(
		table.Column[deliveryRow]{Key: "ref", Header: "Reference", Semantic: table.SemanticIdentifier, Value: func(r deliveryRow) string { return r.Ref }},
		table.Column[deliveryRow]{Key: "to", Header: "Recipient", Value: func(r deliveryRow) string { return r.Recipient }},
		table.Column[deliveryRow]{Key: "channel", Header: "Channel", Value: func(r deliveryRow) string { return r.Channel }},
		table.Column[deliveryRow]{Key: "status", Header: "Status", Semantic: table.SemanticStatus, Value: func(r deliveryRow) string { return r.Status }},
	).Preset(format.TableReceipts).Draw(ctx, rows)

	code, err := stamp.DeliveryCode("b-20260830-2200|3|sha256:1f4c", 0, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reportgen: %v\n", err)
		os.Exit(1)
	}
	ctx.DrawSection("Machine-readable receipt", "")
	ctx.DrawImage(code, 180, 0)
}

// drawVerification appends a QR code that links the printed report back to
// its online record.
func drawVerification(ctx *layout.Context, token string) {
	ctx.DrawSection("Verification", "Scan to check this report against the online record")
	qr, err := stamp.QR("https://verify.paperstack.example/"+token, 256)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reportgen: %v\n", err)
		os.Exit(1)
	}
	ctx.DrawImage(qr, 96, 96)
}
