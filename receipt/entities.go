package receipt

// Entity is a utility company or mobile operator that accepts service
// payments and recharges through the gateway.
type Entity struct {
	Code    string
	Name    string
	Contact string
}

var entities = map[string]Entity{
	"10001": {Code: "10001", Name: "ELECTRA", Contact: "Contacto: 262 30 60"},
	"10002": {Code: "10002", Name: "ÁGUAS DE CABO VERDE", Contact: "Contacto: 800 20 20"},
	"10021": {Code: "10021", Name: "CVMÓVEL", Contact: "Contacto: 111"},
	"10022": {Code: "10022", Name: "UNITEL T+", Contact: "Contacto: 101"},
}

// LookupEntity returns the known entity for code.
func LookupEntity(code string) (Entity, bool) {
	e, ok := entities[code]
	return e, ok
}

// EntityName returns the entity's display name, or "Entidade" when unknown.
func EntityName(code string) string {
	if e, ok := entities[code]; ok {
		return e.Name
	}
	return "Entidade"
}

// EntityContact returns the entity's customer contact line, if any.
func EntityContact(code string) string {
	return entities[code].Contact
}
