package lichess

import "encoding/json"

// Variant is a chess variant key.
type Variant string

// Variants accepted by the wire's "key" tag.
const (
	VariantStandard      Variant = "standard"
	VariantChess960      Variant = "chess960"
	VariantCrazyhouse    Variant = "crazyhouse"
	VariantAntichess     Variant = "antichess"
	VariantAtomic        Variant = "atomic"
	VariantHorde         Variant = "horde"
	VariantKingOfTheHill Variant = "kingOfTheHill"
	VariantRacingKings   Variant = "racingKings"
	VariantThreeCheck    Variant = "threeCheck"
	VariantFromPosition  Variant = "fromPosition"
)

var variantKeys = map[string]Variant{
	string(VariantStandard):      VariantStandard,
	string(VariantChess960):      VariantChess960,
	string(VariantCrazyhouse):    VariantCrazyhouse,
	string(VariantAntichess):     VariantAntichess,
	string(VariantAtomic):        VariantAtomic,
	string(VariantHorde):         VariantHorde,
	string(VariantKingOfTheHill): VariantKingOfTheHill,
	string(VariantRacingKings):   VariantRacingKings,
	string(VariantThreeCheck):    VariantThreeCheck,
	string(VariantFromPosition):  VariantFromPosition,
}

// parseOptionalVariant decodes the wire's variant object. The server tags
// variants with a "key" field but sends an empty object when no variant was
// chosen; an object without a recognized key therefore resolves to nil
// rather than an error. Only non-object values fail.
func parseOptionalVariant(raw json.RawMessage) (*Variant, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var obj struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	if v, ok := variantKeys[obj.Key]; ok {
		return &v, nil
	}
	return nil, nil
}
