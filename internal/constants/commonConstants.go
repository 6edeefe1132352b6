package constants

type (
	NoticeLevel string
	APIStatus   string
)

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeDanger  NoticeLevel = "danger"
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"

	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

// DateLayout is the stored visit date format (YYYY-MM-DD). Input is parsed
// with DateInputLayout, which also takes unpadded month/day and is normalised.
const (
	DateLayout      = "2006-01-02"
	DateInputLayout = "2006-1-2"
)

// Query-string filter names.
const (
	FilterAddress    = "direccion"
	FilterMinPrice   = "min_precio"
	FilterMaxPrice   = "max_precio"
	FilterMinSurface = "min_superficie"
	FilterMaxSurface = "max_superficie"
)

// Form field names for create/edit.
const (
	FieldDate    = "fecha"
	FieldAddress = "direccion"
	FieldSurface = "superficie"
	FieldFloor   = "planta"
	FieldPrice   = "precio"
	FieldLink    = "enlace"
	FieldNotes   = "observaciones"
)

const (
	ExportFileName = "pisos.csv"
	FlashCookie    = "pisos_flash"
)
