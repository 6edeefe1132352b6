package constants

const (
	MsgInvalidDate     = "Fecha inválida. Usa YYYY-MM-DD."
	MsgInvalidSurface  = "Superficie debe ser un número > 0."
	MsgInvalidPrice    = "Precio debe ser un número > 0."
	MsgAddressRequired = "Dirección es obligatoria."
)

const (
	MsgListingCreated  = "Piso agregado."
	MsgListingUpdated  = "Piso actualizado."
	MsgListingDeleted  = "Piso eliminado."
	MsgListingNotFound = "Piso no encontrado."
	MsgNothingToExport = "No hay pisos para exportar."
	MsgInternalError   = "Error interno. Inténtalo de nuevo más tarde."
)
