package skill

import (
	"reflect"
	"testing"
)

func TestFieldsRoundTrip(t *testing.T) {
	rec, result := FromFields(validFields())
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Error())
	}

	again, result := FromFields(rec.Fields())
	if result.HasErrors() {
		t.Fatalf("reconstituted fields failed validation: %v", result.Error())
	}

	if !reflect.DeepEqual(rec, again) {
		t.Errorf("record did not survive Fields round-trip:\n%#v\n%#v", rec, again)
	}
}

func TestFieldsNilParams(t *testing.T) {
	rec := &Record{Name: "x"}

	fields := rec.Fields()
	if fields[FieldEntrypointParams] != "{}" {
		t.Errorf("nil params should render as {}, got %q", fields[FieldEntrypointParams])
	}
}

func TestFieldByKey(t *testing.T) {
	f, ok := FieldByKey(FieldHubID)
	if !ok {
		t.Fatal("hubId should be a known field")
	}
	if f.Tooltip == "" {
		t.Error("known fields carry a tooltip")
	}

	if _, ok := FieldByKey("no_such_field"); ok {
		t.Error("unknown key should not resolve")
	}
}

func TestRequiredFieldsOrderAndCount(t *testing.T) {
	if len(RequiredFields) != 8 {
		t.Fatalf("a skill submission has eight required fields, got %d", len(RequiredFields))
	}
	if RequiredFields[0].Key != FieldName || RequiredFields[1].Key != FieldHubID {
		t.Error("fields must keep their display order")
	}
}

func TestParseParamsEmptyObject(t *testing.T) {
	params, err := ParseParams("{}")
	if err != nil {
		t.Fatalf("empty object is valid: %v", err)
	}
	if len(params) != 0 {
		t.Errorf("expected no params, got %v", params)
	}
}

func TestManifestRecordConversion(t *testing.T) {
	rec, result := FromFields(validFields())
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Error())
	}

	again := RecordFromManifest(rec.Manifest())
	if !reflect.DeepEqual(rec, again) {
		t.Errorf("record did not survive manifest round-trip:\n%#v\n%#v", rec, again)
	}
}
