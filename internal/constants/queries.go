package constants

const (
	CountListings = `
	SELECT COUNT(*) FROM pisos
	`

	AggregateListings = `
	SELECT COALESCE(AVG(superficie), 0) AS avg_surface,
	       COALESCE(AVG(precio), 0) AS avg_price
	FROM pisos
	`

	PriceAreaPairs = `
	SELECT precio, superficie FROM pisos WHERE superficie > 0
	`
)
