package gorm

// Listing is one recorded apartment visit ("piso").
// Check constraints keep surface and price strictly positive at the storage layer.
type Listing struct {
	ID        uint    `gorm:"column:id;primaryKey;autoIncrement"`
	VisitDate string  `gorm:"column:fecha_visita;type:text;not null"`
	Address   string  `gorm:"column:direccion;type:text;not null"`
	Surface   float64 `gorm:"column:superficie;type:double precision;not null;check:chk_pisos_superficie,superficie > 0"`
	Floor     string  `gorm:"column:planta;type:text"`
	Price     float64 `gorm:"column:precio;type:double precision;not null;check:chk_pisos_precio,precio > 0"`
	Link      string  `gorm:"column:enlace;type:text"`
	Notes     string  `gorm:"column:observaciones;type:text"`
}

// TableName specifies the table name for GORM
func (Listing) TableName() string {
	return "pisos"
}

// PricePerArea returns price / surface and false when surface is not positive.
func (l Listing) PricePerArea() (float64, bool) {
	if l.Surface <= 0 {
		return 0, false
	}
	return l.Price / l.Surface, true
}
