package sensitive

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register disclose tags with sentinel
	sentinel.Tag("disclose.mask")
	sentinel.Tag("disclose.redact")
}

// Scrubber produces safe-to-disclose copies of tagged structs. Field
// behavior is declared via struct tags:
//
//	disclose.mask:"{redactor}"  - apply a named redactor at default disclosure
//	disclose.redact:"{literal}" - replace the field with a fixed literal
//
// Masking runs through the same redaction arithmetic as the rendering
// pipeline, so a `disclose.mask:"digits"` field and a Value rendered with
// default precision hide the same amount.
//
// Scrubbers are safe for concurrent use. SetRedactor may be called at any
// time to override a built-in strategy.
//
// Validation occurs automatically on first Scrub. Configure all required
// redactors before the first call.
type Scrubber[T Cloner[T]] struct {
	// Mutable configuration protected by mu
	mu        sync.RWMutex
	redactors map[RedactorName]Redactor

	// Validation state (runs once on first operation)
	validateOnce sync.Once
	validateErr  error

	// Field plans (immutable after construction)
	maskFields   []scrubFieldPlan
	redactFields []scrubFieldPlan

	// Type metadata
	typeName string
}

// scrubFieldPlan describes how to redact a single field.
type scrubFieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	name       string // field name for error messages
	tagVal     string // tag value (e.g., "digits", "***")
	isBytes    bool   // true if field is []byte, false if string
	ptrIndices []int  // indices where pointer dereference is needed
	isSlice    bool   // true if field is []string
	isMap      bool   // true if field is map[K]string
}

// scrubPlans holds the per-type field plans built from struct tags.
type scrubPlans struct {
	typeName     string
	maskFields   []scrubFieldPlan
	redactFields []scrubFieldPlan
}

var (
	planCache   = make(map[reflect.Type]*scrubPlans)
	planCacheMu sync.RWMutex
)

// NewScrubber creates a Scrubber for type T with the built-in redactors.
func NewScrubber[T Cloner[T]]() (*Scrubber[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	s := &Scrubber[T]{
		redactors:    builtinRedactors(),
		typeName:     plans.typeName,
		maskFields:   plans.maskFields,
		redactFields: plans.redactFields,
	}

	emitScrubberCreated(context.Background(), plans.typeName)
	return s, nil
}

// SetRedactor registers a redactor for the given name.
// Returns the scrubber for chaining. Safe for concurrent use.
func (s *Scrubber[T]) SetRedactor(name RedactorName, r Redactor) *Scrubber[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redactors[name] = r
	return s
}

// Validate checks that every disclose.mask field has a registered
// redactor. Validation also runs automatically on first Scrub; calling it
// explicitly allows catching configuration errors at startup.
func (s *Scrubber[T]) Validate() error {
	return s.ensureValidated()
}

// ensureValidated runs validation once and caches the result.
func (s *Scrubber[T]) ensureValidated() error {
	s.validateOnce.Do(func() {
		s.mu.RLock()
		defer s.mu.RUnlock()
		s.validateErr = s.validateRedactors()
	})
	return s.validateErr
}

// validateRedactors ensures all required redactors are registered.
// Skipped when the type implements Concealable.
func (s *Scrubber[T]) validateRedactors() error {
	var zero T
	if _, ok := any(&zero).(Concealable); ok {
		return nil
	}

	for _, plan := range s.maskFields {
		if _, ok := s.redactors[RedactorName(plan.tagVal)]; !ok {
			return newValidationError(ErrMissingRedactor, plan.name,
				fmt.Sprintf("no redactor registered for %q", plan.tagVal))
		}
	}
	return nil
}

// Scrub returns a redacted deep copy of obj. The original is never
// mutated. A nil obj yields a nil result.
func (s *Scrubber[T]) Scrub(ctx context.Context, obj *T) (*T, error) {
	if err := s.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitScrubStart(ctx, s.typeName)

	var retErr error
	defer func() {
		emitScrubComplete(ctx, s.typeName, time.Since(start),
			len(s.maskFields), len(s.redactFields), retErr)
	}()

	if obj == nil {
		return nil, nil
	}

	// Clone to avoid mutating original
	clone := (*obj).Clone()

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Check for override interface
	if c, ok := any(&clone).(Concealable); ok {
		if err := c.Conceal(s.redactors); err != nil {
			retErr = fmt.Errorf("conceal: %w", err)
			return nil, retErr
		}
		return &clone, nil
	}

	s.applyMask(&clone)
	s.applyRedact(&clone)

	return &clone, nil
}

// applyMask applies named redactors via reflection at default disclosure.
func (s *Scrubber[T]) applyMask(obj *T) {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range s.maskFields {
		redactor := s.redactors[RedactorName(plan.tagVal)]

		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		// Handle slice of strings
		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if elem.CanSet() {
					elem.SetString(redactor(-1, elem.String()))
				}
			}
			continue
		}

		// Handle map of strings
		if plan.isMap {
			iter := field.MapRange()
			for iter.Next() {
				k, v := iter.Key(), iter.Value()
				field.SetMapIndex(k, reflect.ValueOf(redactor(-1, v.String())))
			}
			continue
		}

		// Handle scalar string or []byte
		if !field.CanSet() {
			continue
		}

		var value string
		if plan.isBytes {
			value = string(field.Bytes())
		} else {
			value = field.String()
		}

		masked := redactor(-1, value)

		if plan.isBytes {
			field.SetBytes([]byte(masked))
		} else {
			field.SetString(masked)
		}
	}
}

// applyRedact replaces tagged fields with their fixed literal.
func (s *Scrubber[T]) applyRedact(obj *T) {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range s.redactFields {
		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		// Handle slice of strings
		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if elem.CanSet() {
					elem.SetString(plan.tagVal)
				}
			}
			continue
		}

		// Handle map of strings
		if plan.isMap {
			iter := field.MapRange()
			for iter.Next() {
				k := iter.Key()
				field.SetMapIndex(k, reflect.ValueOf(plan.tagVal))
			}
			continue
		}

		// Handle scalar string or []byte
		if !field.CanSet() {
			continue
		}

		if plan.isBytes {
			field.SetBytes([]byte(plan.tagVal))
		} else {
			field.SetString(plan.tagVal)
		}
	}
}

// getField navigates a field path, dereferencing pointers as needed.
func getField(rv reflect.Value, plan scrubFieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}

// getOrBuildPlans returns cached field plans for T, building on first use.
func getOrBuildPlans[T Cloner[T]]() (*scrubPlans, error) {
	typ := reflect.TypeFor[T]()

	planCacheMu.RLock()
	if cached, ok := planCache[typ]; ok {
		planCacheMu.RUnlock()
		return cached, nil
	}
	planCacheMu.RUnlock()

	planCacheMu.Lock()
	defer planCacheMu.Unlock()

	if cached, ok := planCache[typ]; ok {
		return cached, nil
	}

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	planCache[typ] = plans
	return plans, nil
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]]() (*scrubPlans, error) {
	spec := sentinel.Scan[T]()
	plans := &scrubPlans{
		typeName: spec.TypeName,
	}

	if err := buildFieldPlansRecursive(plans, spec, nil, nil, ""); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildFieldPlansRecursive recursively processes fields and nested structs.
func buildFieldPlansRecursive(plans *scrubPlans, spec sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		// Handle nested structs
		if field.Kind == sentinel.KindStruct {
			nestedSpec := scanNestedType(field.ReflectType)
			if nestedSpec != nil {
				if err := buildFieldPlansRecursive(plans, *nestedSpec, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		// Handle pointer to struct
		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			nestedSpec := scanNestedType(field.ReflectType.Elem())
			if nestedSpec != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := buildFieldPlansRecursive(plans, *nestedSpec, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		// Check underlying kind for string, []byte, []string, or map[K]string fields
		isString := field.ReflectType.Kind() == reflect.String
		isBytes := field.ReflectType.Kind() == reflect.Slice &&
			field.ReflectType.Elem().Kind() == reflect.Uint8
		isStringSlice := field.ReflectType.Kind() == reflect.Slice &&
			field.ReflectType.Elem().Kind() == reflect.String
		isStringMap := field.ReflectType.Kind() == reflect.Map &&
			field.ReflectType.Elem().Kind() == reflect.String

		if !isString && !isBytes && !isStringSlice && !isStringMap {
			continue
		}

		basePlan := scrubFieldPlan{
			index:      fullIndex,
			name:       fullName,
			isBytes:    isBytes,
			ptrIndices: ptrIndices,
			isSlice:    isStringSlice,
			isMap:      isStringMap,
		}

		if val, ok := field.Tags["disclose.mask"]; ok {
			if !IsValidRedactorName(RedactorName(val)) {
				return newValidationError(ErrInvalidTag, fullName,
					fmt.Sprintf("unknown redactor name %q", val))
			}
			plan := basePlan
			plan.tagVal = val
			plans.maskFields = append(plans.maskFields, plan)
		}

		if val, ok := field.Tags["disclose.redact"]; ok {
			// Redact values are arbitrary literals, no validation needed
			plan := basePlan
			plan.tagVal = val
			plans.redactFields = append(plans.redactFields, plan)
		}
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseDiscloseTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// parseDiscloseTags extracts disclose.* tags from a struct tag.
func parseDiscloseTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	names := []string{
		"disclose.mask",
		"disclose.redact",
	}

	for _, n := range names {
		if val, ok := tag.Lookup(n); ok {
			tags[n] = val
		}
	}

	return tags
}
