package model

import "log"

// EntityKind names a family of trackable entities. Each kind owns an
// independent, closed status enumeration.
type EntityKind string

const (
	KindProductionOrder EntityKind = "production_order"
	KindWorkOrder       EntityKind = "work_order"
	KindEvent           EntityKind = "event"
	KindMaintenance     EntityKind = "maintenance"
	KindTraining        EntityKind = "training"
)

// ColorToken is an abstract UI color name. The frontend maps tokens to its
// palette; the backend never deals in hex values.
type ColorToken string

const (
	ColorNeutral ColorToken = "neutral"
	ColorGray    ColorToken = "gray"
	ColorBlue    ColorToken = "blue"
	ColorCyan    ColorToken = "cyan"
	ColorTeal    ColorToken = "teal"
	ColorAmber   ColorToken = "amber"
	ColorOrange  ColorToken = "orange"
	ColorPurple  ColorToken = "purple"
	ColorGreen   ColorToken = "green"
	ColorRed     ColorToken = "red"
)

// Production order statuses, in pipeline order.
const (
	StatusNotAuthorized  = "not_authorized"
	StatusAuthorized     = "authorized"
	StatusCutting        = "cutting"
	StatusCut            = "cut"
	StatusOnEdgeGrinding = "on_edge_grinding"
	StatusOnDrilling     = "on_drilling"
	StatusWashing        = "washing"
	StatusOnPaintCabin   = "on_paint_cabin"
	StatusPainted        = "painted"
	StatusOnSchmelzOven  = "on_schmelz_oven"
	StatusOnTempering    = "on_tempering"
	StatusOnLaminating   = "on_laminating_machine"
	StatusOnQualityCheck = "on_quality_check"
	StatusPackaging      = "packaging"
	StatusReadyDelivery  = "ready_for_delivery"
	StatusDelivered      = "delivered"
	StatusCompleted      = "completed"
)

// Work order statuses.
const (
	WorkStatusPlanned    = "planned"
	WorkStatusInProgress = "in_progress"
	WorkStatusPaused     = "paused"
	WorkStatusCompleted  = "completed"
	WorkStatusCancelled  = "cancelled"
)

// Maintenance record statuses.
const (
	MaintStatusScheduled  = "scheduled"
	MaintStatusInProgress = "in_progress"
	MaintStatusCompleted  = "completed"
	MaintStatusOverdue    = "overdue"
)

// Training record statuses.
const (
	TrainStatusScheduled  = "scheduled"
	TrainStatusInProgress = "in_progress"
	TrainStatusCompleted  = "completed"
	TrainStatusExpired    = "expired"
)

type statusMeta struct {
	Label    string
	Color    ColorToken
	Terminal bool
}

// catalog holds the per-kind enumeration tables. Initialized once,
// read-only afterwards.
var catalog = map[EntityKind]map[string]statusMeta{
	KindProductionOrder: {
		StatusNotAuthorized:  {Label: "Not Authorized", Color: ColorGray},
		StatusAuthorized:     {Label: "Authorized", Color: ColorBlue},
		StatusCutting:        {Label: "Cutting", Color: ColorCyan},
		StatusCut:            {Label: "Cut", Color: ColorCyan},
		StatusOnEdgeGrinding: {Label: "On Edge Grinding", Color: ColorTeal},
		StatusOnDrilling:     {Label: "On Drilling", Color: ColorTeal},
		StatusWashing:        {Label: "Washing", Color: ColorTeal},
		StatusOnPaintCabin:   {Label: "On Paint Cabin", Color: ColorPurple},
		StatusPainted:        {Label: "Painted", Color: ColorPurple},
		StatusOnSchmelzOven:  {Label: "On Schmelz Oven", Color: ColorOrange},
		StatusOnTempering:    {Label: "On Tempering", Color: ColorOrange},
		StatusOnLaminating:   {Label: "On Laminating Machine", Color: ColorAmber},
		StatusOnQualityCheck: {Label: "On Quality Check", Color: ColorAmber},
		StatusPackaging:      {Label: "Packaging", Color: ColorBlue},
		StatusReadyDelivery:  {Label: "Ready for Delivery", Color: ColorBlue},
		StatusDelivered:      {Label: "Delivered", Color: ColorGreen},
		StatusCompleted:      {Label: "Completed", Color: ColorGreen, Terminal: true},
	},
	KindWorkOrder: {
		WorkStatusPlanned:    {Label: "Planned", Color: ColorBlue},
		WorkStatusInProgress: {Label: "In Progress", Color: ColorAmber},
		WorkStatusPaused:     {Label: "Paused", Color: ColorGray},
		WorkStatusCompleted:  {Label: "Completed", Color: ColorGreen, Terminal: true},
		WorkStatusCancelled:  {Label: "Cancelled", Color: ColorRed, Terminal: true},
	},
	KindMaintenance: {
		MaintStatusScheduled:  {Label: "Scheduled", Color: ColorBlue},
		MaintStatusInProgress: {Label: "In Progress", Color: ColorAmber},
		MaintStatusCompleted:  {Label: "Completed", Color: ColorGreen, Terminal: true},
		MaintStatusOverdue:    {Label: "Overdue", Color: ColorRed},
	},
	KindTraining: {
		TrainStatusScheduled:  {Label: "Scheduled", Color: ColorBlue},
		TrainStatusInProgress: {Label: "In Progress", Color: ColorAmber},
		TrainStatusCompleted:  {Label: "Completed", Color: ColorGreen, Terminal: true},
		TrainStatusExpired:    {Label: "Expired", Color: ColorRed, Terminal: true},
	},
}

// statusAlias resolves a deprecated status value to its current-generation
// equivalent. Aliases exist only because stored values changed meaning over
// time without a data migration; they are valid for display, never as write
// targets. LabelOverride keeps the historic wording where the old label is
// still meaningful on its own ("Laminated" is a finished state of the
// laminating machine stage).
type statusAlias struct {
	CanonicalStatus string
	LabelOverride   string
}

var aliases = map[EntityKind]map[string]statusAlias{
	KindProductionOrder: {
		"on_cabin":   {CanonicalStatus: StatusOnPaintCabin},
		"laminating": {CanonicalStatus: StatusOnLaminating},
		"laminated":  {CanonicalStatus: StatusOnLaminating, LabelOverride: "Laminated"},
		"on_oven":    {CanonicalStatus: StatusOnSchmelzOven},
	},
}

// Canonical resolves a deprecated alias to its current status value.
// Unknown and current values pass through unchanged.
func Canonical(kind EntityKind, status string) string {
	if a, ok := aliases[kind][status]; ok {
		return a.CanonicalStatus
	}
	return status
}

// IsValidStatus reports whether status is a current-generation value for the
// kind. Deprecated aliases are NOT valid: storage must never write one for a
// new record.
func IsValidStatus(kind EntityKind, status string) bool {
	_, ok := catalog[kind][status]
	return ok
}

// LabelFor returns the display label for a status. Deprecated aliases resolve
// to their canonical label unless they carry a distinct historic one. An
// unknown status degrades to the raw string so rendering never fails.
func LabelFor(kind EntityKind, status string) string {
	if a, ok := aliases[kind][status]; ok {
		if a.LabelOverride != "" {
			return a.LabelOverride
		}
		status = a.CanonicalStatus
	}
	if meta, ok := catalog[kind][status]; ok {
		return meta.Label
	}
	log.Printf("status catalog: unknown status %q for kind %q, rendering raw", status, kind)
	return status
}

// ColorFor returns the color token for a status, resolving deprecated
// aliases. Unknown statuses get the neutral token.
func ColorFor(kind EntityKind, status string) ColorToken {
	if meta, ok := catalog[kind][Canonical(kind, status)]; ok {
		return meta.Color
	}
	log.Printf("status catalog: unknown status %q for kind %q, using neutral color", status, kind)
	return ColorNeutral
}

// IsTerminal reports whether a status ends the entity's lifecycle. Terminal
// entities leave the active views and appear only in history. Unknown
// statuses are treated as non-terminal so an unmigrated value never hides a
// live record.
func IsTerminal(kind EntityKind, status string) bool {
	meta, ok := catalog[kind][Canonical(kind, status)]
	return ok && meta.Terminal
}

// ProductionPipeline lists the production statuses in shop-floor order, for
// clients that render the progress stepper.
var ProductionPipeline = []string{
	StatusNotAuthorized,
	StatusAuthorized,
	StatusCutting,
	StatusCut,
	StatusOnEdgeGrinding,
	StatusOnDrilling,
	StatusWashing,
	StatusOnPaintCabin,
	StatusPainted,
	StatusOnSchmelzOven,
	StatusOnTempering,
	StatusOnLaminating,
	StatusOnQualityCheck,
	StatusPackaging,
	StatusReadyDelivery,
	StatusDelivered,
	StatusCompleted,
}
