// Package schema defines the canonical SDS field set: the ordered field keys
// the extraction model must return and the column layout of the database
// sheet they are written into. All other packages address record data through
// these keys.
package schema

import "fmt"

// Field describes one extractable SDS field.
type Field struct {
	Key         string
	Description string
	// Critical marks fields whose absence can trigger a gap-fill pass.
	Critical bool
}

// fields is the extraction field set in output order. Keys and order are the
// wire contract with the model; do not reorder.
var fields = []Field{
	{Key: "product_name", Description: "Trade name of the product", Critical: true},
	{Key: "product_category", Description: "Product category (e.g. solvent, adhesive)"},
	{Key: "sds_language", Description: "Language of the source SDS"},
	{Key: "sds_version", Description: "SDS version number"},
	{Key: "sds_date", Description: "SDS issue date"},
	{Key: "sds_revision_date", Description: "SDS revision date"},
	{Key: "manufacturer", Description: "Manufacturer or supplier name"},
	{Key: "manufacturer_address", Description: "Manufacturer address"},
	{Key: "manufacturer_phone", Description: "Manufacturer phone"},
	{Key: "manufacturer_email", Description: "Manufacturer email"},
	{Key: "emergency_phone", Description: "Emergency phone number"},
	{Key: "ufi_code", Description: "UFI code"},
	{Key: "product_form", Description: "Physical form of the product"},
	{Key: "intended_use", Description: "Intended use"},
	{Key: "use_category", Description: "Use category"},
	{Key: "substance_or_mixture", Description: "Substance or mixture"},
	{Key: "comp1_name", Description: "Component 1 name"},
	{Key: "comp1_cas", Description: "Component 1 CAS number"},
	{Key: "comp1_ec", Description: "Component 1 EC number"},
	{Key: "comp1_conc", Description: "Component 1 concentration %"},
	{Key: "comp1_clp", Description: "Component 1 CLP classification"},
	{Key: "comp2_name", Description: "Component 2 name"},
	{Key: "comp2_cas", Description: "Component 2 CAS number"},
	{Key: "comp2_ec", Description: "Component 2 EC number"},
	{Key: "comp2_conc", Description: "Component 2 concentration %"},
	{Key: "comp2_clp", Description: "Component 2 CLP classification"},
	{Key: "comp3_name", Description: "Component 3 name"},
	{Key: "comp3_cas", Description: "Component 3 CAS number"},
	{Key: "comp3_conc", Description: "Component 3 concentration %"},
	{Key: "comp3_clp", Description: "Component 3 CLP classification"},
	{Key: "clp_classification", Description: "CLP classification of the mixture"},
	{Key: "ghs_pictograms", Description: "GHS pictogram codes"},
	{Key: "signal_word", Description: "Signal word"},
	{Key: "h_statements", Description: "H statements with code and full text"},
	{Key: "p_statements", Description: "P statements with code and full text"},
	{Key: "euh_statements", Description: "EUH statements"},
	{Key: "svhc", Description: "SVHC status", Critical: true},
	{Key: "pbt_vpvb", Description: "PBT/vPvB assessment"},
	{Key: "physical_state", Description: "Physical state"},
	{Key: "color", Description: "Colour"},
	{Key: "odor", Description: "Odour"},
	{Key: "melting_point", Description: "Melting point (°C)"},
	{Key: "boiling_point", Description: "Boiling point (°C)"},
	{Key: "flash_point", Description: "Flash point (°C)"},
	{Key: "autoignition_temp", Description: "Auto-ignition temperature (°C)"},
	{Key: "density", Description: "Density (g/cm³)"},
	{Key: "water_solubility", Description: "Water solubility"},
	{Key: "ph", Description: "pH"},
	{Key: "vapor_pressure", Description: "Vapour pressure"},
	{Key: "ak_value", Description: "Occupational exposure limit, 8h TWA (mg/m³)", Critical: true},
	{Key: "ck_value", Description: "Occupational exposure limit, short term (mg/m³)"},
	{Key: "mk_value", Description: "Occupational exposure limit, ceiling (mg/m³)"},
	{Key: "dnel_inhalation", Description: "DNEL worker inhalation"},
	{Key: "dnel_dermal", Description: "DNEL worker dermal"},
	{Key: "boelv", Description: "EU binding occupational exposure limit (mg/m³)"},
	{Key: "respiratory_protection", Description: "Respiratory protection", Critical: true},
	{Key: "hand_protection", Description: "Hand protection specification", Critical: true},
	{Key: "eye_protection", Description: "Eye protection"},
	{Key: "skin_protection", Description: "Skin protection"},
	{Key: "engineering_controls", Description: "Engineering controls"},
	{Key: "suitable_extinguishing", Description: "Suitable extinguishing media"},
	{Key: "unsuitable_extinguishing", Description: "Unsuitable extinguishing media"},
	{Key: "hazardous_decomposition", Description: "Hazardous decomposition products"},
	{Key: "firefighter_ppe", Description: "Firefighter protective equipment"},
	{Key: "ld50_oral", Description: "Acute oral toxicity LD50", Critical: true},
	{Key: "ld50_dermal", Description: "Acute dermal toxicity LD50"},
	{Key: "lc50_inhalation", Description: "Acute inhalation toxicity LC50"},
	{Key: "skin_irritation", Description: "Skin irritation"},
	{Key: "eye_irritation", Description: "Eye irritation"},
	{Key: "sensitization", Description: "Sensitization"},
	{Key: "cmr_effects", Description: "CMR effects"},
	{Key: "un_number", Description: "UN number"},
	{Key: "shipping_name", Description: "Proper shipping name"},
	{Key: "adr_class", Description: "ADR class"},
	{Key: "packing_group", Description: "Packing group"},
	{Key: "marine_pollutant", Description: "Marine pollutant"},
	{Key: "ewc_code", Description: "EWC waste code"},
	{Key: "disposal_method", Description: "Waste disposal method"},
	{Key: "exposure_routes", Description: "Exposure routes"},
}

var byKey = func() map[string]Field {
	m := make(map[string]Field, len(fields))
	for _, f := range fields {
		m[f.Key] = f
	}
	return m
}()

// All returns the extraction fields in output order.
func All() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Get returns a single field by key.
func Get(key string) (Field, error) {
	f, ok := byKey[key]
	if !ok {
		return Field{}, fmt.Errorf("unknown field: %s", key)
	}
	return f, nil
}

// Known reports whether key is part of the extraction field set.
func Known(key string) bool {
	_, ok := byKey[key]
	return ok
}

// Keys returns the extraction field keys in output order.
func Keys() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Key
	}
	return out
}

// ColumnKind classifies a database-sheet column.
type ColumnKind int

const (
	// ColSeq is the row sequence number column.
	ColSeq ColumnKind = iota
	// ColField carries an extraction field value.
	ColField
	// ColUseLocation is pre-filled with the localized use-location label.
	ColUseLocation
	// ColCompanyFills is pre-filled with the localized company-fills label.
	ColCompanyFills
	// ColNotes is left empty for the company.
	ColNotes
)

// DBColumn is one column of the database sheet layout.
type DBColumn struct {
	Kind ColumnKind
	Key  string // field key for ColField columns, empty otherwise
}

// databaseLayout is the fixed 85-column database sheet layout. Category
// precedes product name, and the company placeholder columns sit between
// disposal_method and exposure_routes, matching the header tables.
var databaseLayout = buildDatabaseLayout()

func buildDatabaseLayout() []DBColumn {
	cols := make([]DBColumn, 0, 85)
	cols = append(cols,
		DBColumn{Kind: ColSeq},
		DBColumn{Kind: ColField, Key: "product_category"},
		DBColumn{Kind: ColField, Key: "product_name"},
	)
	for _, f := range fields {
		switch f.Key {
		case "product_name", "product_category", "exposure_routes":
			continue
		}
		cols = append(cols, DBColumn{Kind: ColField, Key: f.Key})
	}
	cols = append(cols,
		DBColumn{Kind: ColUseLocation},
		DBColumn{Kind: ColCompanyFills},
		DBColumn{Kind: ColCompanyFills},
		DBColumn{Kind: ColField, Key: "exposure_routes"},
		DBColumn{Kind: ColCompanyFills},
		DBColumn{Kind: ColNotes},
	)
	return cols
}

// DatabaseLayout returns the database sheet column layout. Index i renders
// into sheet column i+1.
func DatabaseLayout() []DBColumn {
	out := make([]DBColumn, len(databaseLayout))
	copy(out, databaseLayout)
	return out
}
