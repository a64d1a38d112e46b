package xdr

import "github.com/stellar/go-stellar-sdk/support/errors"

// ScSpecType discriminates the ScSpecTypeDef union: the type language a
// contract's embedded spec entries describe arguments, return values and
// struct/union fields with.
type ScSpecType int32

const (
	ScSpecTypeScSpecTypeVal       ScSpecType = 0
	ScSpecTypeScSpecTypeBool      ScSpecType = 1
	ScSpecTypeScSpecTypeVoid      ScSpecType = 2
	ScSpecTypeScSpecTypeError     ScSpecType = 3
	ScSpecTypeScSpecTypeU32       ScSpecType = 4
	ScSpecTypeScSpecTypeI32       ScSpecType = 5
	ScSpecTypeScSpecTypeU64       ScSpecType = 6
	ScSpecTypeScSpecTypeI64       ScSpecType = 7
	ScSpecTypeScSpecTypeTimepoint ScSpecType = 8
	ScSpecTypeScSpecTypeDuration  ScSpecType = 9
	ScSpecTypeScSpecTypeU128      ScSpecType = 10
	ScSpecTypeScSpecTypeI128      ScSpecType = 11
	ScSpecTypeScSpecTypeU256      ScSpecType = 12
	ScSpecTypeScSpecTypeI256      ScSpecType = 13
	ScSpecTypeScSpecTypeBytes     ScSpecType = 14
	ScSpecTypeScSpecTypeString    ScSpecType = 16
	ScSpecTypeScSpecTypeSymbol    ScSpecType = 17
	ScSpecTypeScSpecTypeAddress   ScSpecType = 19
	ScSpecTypeScSpecTypeOption    ScSpecType = 1000
	ScSpecTypeScSpecTypeResult    ScSpecType = 1001
	ScSpecTypeScSpecTypeVec       ScSpecType = 1002
	ScSpecTypeScSpecTypeMap       ScSpecType = 1004
	ScSpecTypeScSpecTypeTuple     ScSpecType = 1005
	ScSpecTypeScSpecTypeBytesN    ScSpecType = 1006
	ScSpecTypeScSpecTypeUdt       ScSpecType = 1007
)

type ScSpecTypeOption struct{ ValueType *ScSpecTypeDef }
type ScSpecTypeResult struct {
	OkType    *ScSpecTypeDef
	ErrorType *ScSpecTypeDef
}
type ScSpecTypeVec struct{ ElementType *ScSpecTypeDef }
type ScSpecTypeMap struct {
	KeyType   *ScSpecTypeDef
	ValueType *ScSpecTypeDef
}
type ScSpecTypeTuple struct{ ValueTypes []ScSpecTypeDef }
type ScSpecTypeBytesN struct{ N Uint32 }
type ScSpecTypeUdt struct{ Name string }

// ScSpecTypeDef is a type reference within a contract spec entry: either
// a scalar, or one of the recursive compound forms (option/result/vec/
// map/tuple/bytesN/udt).
type ScSpecTypeDef struct {
	Type   ScSpecType
	Option *ScSpecTypeOption
	Result *ScSpecTypeResult
	Vec    *ScSpecTypeVec
	Map    *ScSpecTypeMap
	Tuple  *ScSpecTypeTuple
	BytesN *ScSpecTypeBytesN
	Udt    *ScSpecTypeUdt
}

func (t ScSpecTypeDef) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(t.Type)); err != nil {
		return err
	}
	switch t.Type {
	case ScSpecTypeScSpecTypeOption:
		return t.Option.ValueType.EncodeTo(e)
	case ScSpecTypeScSpecTypeResult:
		if err := t.Result.OkType.EncodeTo(e); err != nil {
			return err
		}
		return t.Result.ErrorType.EncodeTo(e)
	case ScSpecTypeScSpecTypeVec:
		return t.Vec.ElementType.EncodeTo(e)
	case ScSpecTypeScSpecTypeMap:
		if err := t.Map.KeyType.EncodeTo(e); err != nil {
			return err
		}
		return t.Map.ValueType.EncodeTo(e)
	case ScSpecTypeScSpecTypeTuple:
		if err := e.EncodeUint(uint32(len(t.Tuple.ValueTypes))); err != nil {
			return err
		}
		for _, v := range t.Tuple.ValueTypes {
			if err := v.EncodeTo(e); err != nil {
				return err
			}
		}
		return nil
	case ScSpecTypeScSpecTypeBytesN:
		return t.BytesN.N.EncodeTo(e)
	case ScSpecTypeScSpecTypeUdt:
		return e.EncodeString(t.Udt.Name)
	default:
		return nil
	}
}

func (t *ScSpecTypeDef) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	t.Type = ScSpecType(v)
	switch t.Type {
	case ScSpecTypeScSpecTypeOption:
		var inner ScSpecTypeDef
		if _, err := inner.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.Option = &ScSpecTypeOption{ValueType: &inner}
	case ScSpecTypeScSpecTypeResult:
		var ok, errType ScSpecTypeDef
		if _, err := ok.DecodeFrom(d); err != nil {
			return 0, err
		}
		if _, err := errType.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.Result = &ScSpecTypeResult{OkType: &ok, ErrorType: &errType}
	case ScSpecTypeScSpecTypeVec:
		var inner ScSpecTypeDef
		if _, err := inner.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.Vec = &ScSpecTypeVec{ElementType: &inner}
	case ScSpecTypeScSpecTypeMap:
		var key, val ScSpecTypeDef
		if _, err := key.DecodeFrom(d); err != nil {
			return 0, err
		}
		if _, err := val.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.Map = &ScSpecTypeMap{KeyType: &key, ValueType: &val}
	case ScSpecTypeScSpecTypeTuple:
		n, err := d.DecodeUint()
		if err != nil {
			return 0, err
		}
		items := make([]ScSpecTypeDef, n)
		for i := range items {
			if _, err := items[i].DecodeFrom(d); err != nil {
				return 0, err
			}
		}
		t.Tuple = &ScSpecTypeTuple{ValueTypes: items}
	case ScSpecTypeScSpecTypeBytesN:
		var n Uint32
		if _, err := n.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.BytesN = &ScSpecTypeBytesN{N: n}
	case ScSpecTypeScSpecTypeUdt:
		name, err := d.DecodeString(60)
		if err != nil {
			return 0, err
		}
		t.Udt = &ScSpecTypeUdt{Name: name}
	}
	return d.offset - start, nil
}

// ScSpecFunctionInputV0 is one named, typed parameter of a contract
// function, as declared in its embedded spec.
type ScSpecFunctionInputV0 struct {
	Doc  string
	Name string
	Type ScSpecTypeDef
}

func (f ScSpecFunctionInputV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(f.Doc); err != nil {
		return err
	}
	if err := e.EncodeString(f.Name); err != nil {
		return err
	}
	return f.Type.EncodeTo(e)
}

func (f *ScSpecFunctionInputV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	doc, err := d.DecodeString(1024)
	if err != nil {
		return 0, err
	}
	f.Doc = doc
	name, err := d.DecodeString(60)
	if err != nil {
		return 0, err
	}
	f.Name = name
	if _, err := f.Type.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// ScSpecFunctionV0 describes one exported contract function: its name,
// parameters and return types.
type ScSpecFunctionV0 struct {
	Doc     string
	Name    string
	Inputs  []ScSpecFunctionInputV0
	Outputs []ScSpecTypeDef
}

func (f ScSpecFunctionV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(f.Doc); err != nil {
		return err
	}
	if err := e.EncodeString(f.Name); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(f.Inputs))); err != nil {
		return err
	}
	for _, in := range f.Inputs {
		if err := in.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeUint(uint32(len(f.Outputs))); err != nil {
		return err
	}
	for _, out := range f.Outputs {
		if err := out.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (f *ScSpecFunctionV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	doc, err := d.DecodeString(1024)
	if err != nil {
		return 0, err
	}
	f.Doc = doc
	name, err := d.DecodeString(60)
	if err != nil {
		return 0, err
	}
	f.Name = name
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	f.Inputs = make([]ScSpecFunctionInputV0, n)
	for i := range f.Inputs {
		if _, err := f.Inputs[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	n, err = d.DecodeUint()
	if err != nil {
		return 0, err
	}
	f.Outputs = make([]ScSpecTypeDef, n)
	for i := range f.Outputs {
		if _, err := f.Outputs[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

// ScSpecUdtStructFieldV0 is one named, typed field of a UDT struct.
type ScSpecUdtStructFieldV0 struct {
	Doc  string
	Name string
	Type ScSpecTypeDef
}

func (f ScSpecUdtStructFieldV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(f.Doc); err != nil {
		return err
	}
	if err := e.EncodeString(f.Name); err != nil {
		return err
	}
	return f.Type.EncodeTo(e)
}

func (f *ScSpecUdtStructFieldV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	doc, err := d.DecodeString(1024)
	if err != nil {
		return 0, err
	}
	f.Doc = doc
	name, err := d.DecodeString(60)
	if err != nil {
		return 0, err
	}
	f.Name = name
	if _, err := f.Type.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// ScSpecUdtStructV0 describes a contract struct type and its fields.
type ScSpecUdtStructV0 struct {
	Doc    string
	Lib    string
	Name   string
	Fields []ScSpecUdtStructFieldV0
}

func (s ScSpecUdtStructV0) EncodeTo(e *Encoder) error {
	for _, str := range []string{s.Doc, s.Lib, s.Name} {
		if err := e.EncodeString(str); err != nil {
			return err
		}
	}
	if err := e.EncodeUint(uint32(len(s.Fields))); err != nil {
		return err
	}
	for _, f := range s.Fields {
		if err := f.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (s *ScSpecUdtStructV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	for _, dst := range []*string{&s.Doc, &s.Lib, &s.Name} {
		v, err := d.DecodeString(1024)
		if err != nil {
			return 0, err
		}
		*dst = v
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	s.Fields = make([]ScSpecUdtStructFieldV0, n)
	for i := range s.Fields {
		if _, err := s.Fields[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

// ScSpecUdtUnionCaseV0Kind discriminates a union case between a bare tag
// and a tag carrying typed fields.
type ScSpecUdtUnionCaseV0Kind int32

const (
	ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseVoidV0  ScSpecUdtUnionCaseV0Kind = 0
	ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseTupleV0 ScSpecUdtUnionCaseV0Kind = 1
)

type ScSpecUdtUnionCaseVoidV0 struct {
	Doc  string
	Name string
}

type ScSpecUdtUnionCaseTupleV0 struct {
	Doc   string
	Name  string
	Types []ScSpecTypeDef
}

type ScSpecUdtUnionCaseV0 struct {
	Kind  ScSpecUdtUnionCaseV0Kind
	Void  *ScSpecUdtUnionCaseVoidV0
	Tuple *ScSpecUdtUnionCaseTupleV0
}

func (c ScSpecUdtUnionCaseV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(c.Kind)); err != nil {
		return err
	}
	switch c.Kind {
	case ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseVoidV0:
		if err := e.EncodeString(c.Void.Doc); err != nil {
			return err
		}
		return e.EncodeString(c.Void.Name)
	case ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseTupleV0:
		if err := e.EncodeString(c.Tuple.Doc); err != nil {
			return err
		}
		if err := e.EncodeString(c.Tuple.Name); err != nil {
			return err
		}
		if err := e.EncodeUint(uint32(len(c.Tuple.Types))); err != nil {
			return err
		}
		for _, t := range c.Tuple.Types {
			if err := t.EncodeTo(e); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Errorf("unsupported union case kind %d", c.Kind)
	}
}

func (c *ScSpecUdtUnionCaseV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	k, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	c.Kind = ScSpecUdtUnionCaseV0Kind(k)
	switch c.Kind {
	case ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseVoidV0:
		doc, err := d.DecodeString(1024)
		if err != nil {
			return 0, err
		}
		name, err := d.DecodeString(60)
		if err != nil {
			return 0, err
		}
		c.Void = &ScSpecUdtUnionCaseVoidV0{Doc: doc, Name: name}
	case ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseTupleV0:
		doc, err := d.DecodeString(1024)
		if err != nil {
			return 0, err
		}
		name, err := d.DecodeString(60)
		if err != nil {
			return 0, err
		}
		n, err := d.DecodeUint()
		if err != nil {
			return 0, err
		}
		types := make([]ScSpecTypeDef, n)
		for i := range types {
			if _, err := types[i].DecodeFrom(d); err != nil {
				return 0, err
			}
		}
		c.Tuple = &ScSpecUdtUnionCaseTupleV0{Doc: doc, Name: name, Types: types}
	default:
		return 0, d.fail(errors.Errorf("unsupported union case kind %d", c.Kind))
	}
	return d.offset - start, nil
}

// ScSpecUdtUnionV0 describes a contract union (Rust-style tagged enum
// with data) type and its cases.
type ScSpecUdtUnionV0 struct {
	Doc   string
	Lib   string
	Name  string
	Cases []ScSpecUdtUnionCaseV0
}

func (u ScSpecUdtUnionV0) EncodeTo(e *Encoder) error {
	for _, s := range []string{u.Doc, u.Lib, u.Name} {
		if err := e.EncodeString(s); err != nil {
			return err
		}
	}
	if err := e.EncodeUint(uint32(len(u.Cases))); err != nil {
		return err
	}
	for _, c := range u.Cases {
		if err := c.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (u *ScSpecUdtUnionV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	for _, dst := range []*string{&u.Doc, &u.Lib, &u.Name} {
		v, err := d.DecodeString(1024)
		if err != nil {
			return 0, err
		}
		*dst = v
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	u.Cases = make([]ScSpecUdtUnionCaseV0, n)
	for i := range u.Cases {
		if _, err := u.Cases[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

// ScSpecUdtEnumCaseV0 is one named constant of a plain (data-less)
// contract enum.
type ScSpecUdtEnumCaseV0 struct {
	Doc   string
	Name  string
	Value Uint32
}

func (c ScSpecUdtEnumCaseV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(c.Doc); err != nil {
		return err
	}
	if err := e.EncodeString(c.Name); err != nil {
		return err
	}
	return c.Value.EncodeTo(e)
}

func (c *ScSpecUdtEnumCaseV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	doc, err := d.DecodeString(1024)
	if err != nil {
		return 0, err
	}
	c.Doc = doc
	name, err := d.DecodeString(60)
	if err != nil {
		return 0, err
	}
	c.Name = name
	if _, err := c.Value.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type ScSpecUdtEnumV0 struct {
	Doc   string
	Lib   string
	Name  string
	Cases []ScSpecUdtEnumCaseV0
}

func (u ScSpecUdtEnumV0) EncodeTo(e *Encoder) error {
	for _, s := range []string{u.Doc, u.Lib, u.Name} {
		if err := e.EncodeString(s); err != nil {
			return err
		}
	}
	if err := e.EncodeUint(uint32(len(u.Cases))); err != nil {
		return err
	}
	for _, c := range u.Cases {
		if err := c.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (u *ScSpecUdtEnumV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	for _, dst := range []*string{&u.Doc, &u.Lib, &u.Name} {
		v, err := d.DecodeString(1024)
		if err != nil {
			return 0, err
		}
		*dst = v
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	u.Cases = make([]ScSpecUdtEnumCaseV0, n)
	for i := range u.Cases {
		if _, err := u.Cases[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

// ScSpecUdtErrorEnumCaseV0 is one named error code of a contract's error
// enum.
type ScSpecUdtErrorEnumCaseV0 struct {
	Doc   string
	Name  string
	Value Uint32
}

func (c ScSpecUdtErrorEnumCaseV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(c.Doc); err != nil {
		return err
	}
	if err := e.EncodeString(c.Name); err != nil {
		return err
	}
	return c.Value.EncodeTo(e)
}

func (c *ScSpecUdtErrorEnumCaseV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	doc, err := d.DecodeString(1024)
	if err != nil {
		return 0, err
	}
	c.Doc = doc
	name, err := d.DecodeString(60)
	if err != nil {
		return 0, err
	}
	c.Name = name
	if _, err := c.Value.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type ScSpecUdtErrorEnumV0 struct {
	Doc   string
	Lib   string
	Name  string
	Cases []ScSpecUdtErrorEnumCaseV0
}

func (u ScSpecUdtErrorEnumV0) EncodeTo(e *Encoder) error {
	for _, s := range []string{u.Doc, u.Lib, u.Name} {
		if err := e.EncodeString(s); err != nil {
			return err
		}
	}
	if err := e.EncodeUint(uint32(len(u.Cases))); err != nil {
		return err
	}
	for _, c := range u.Cases {
		if err := c.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (u *ScSpecUdtErrorEnumV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	for _, dst := range []*string{&u.Doc, &u.Lib, &u.Name} {
		v, err := d.DecodeString(1024)
		if err != nil {
			return 0, err
		}
		*dst = v
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	u.Cases = make([]ScSpecUdtErrorEnumCaseV0, n)
	for i := range u.Cases {
		if _, err := u.Cases[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

// ScSpecEntryKind discriminates the ScSpecEntry union: which kind of
// contract interface declaration a spec entry carries.
type ScSpecEntryKind int32

const (
	ScSpecEntryKindScSpecEntryFunctionV0      ScSpecEntryKind = 0
	ScSpecEntryKindScSpecEntryUdtStructV0     ScSpecEntryKind = 1
	ScSpecEntryKindScSpecEntryUdtUnionV0      ScSpecEntryKind = 2
	ScSpecEntryKindScSpecEntryUdtEnumV0       ScSpecEntryKind = 3
	ScSpecEntryKindScSpecEntryUdtErrorEnumV0  ScSpecEntryKind = 4
)

// ScSpecEntry is one entry of a contract's embedded XDR spec (the
// "contractspecv0" custom section): a function signature, or one of the
// user-defined type declarations (struct/union/enum/error enum).
type ScSpecEntry struct {
	Kind          ScSpecEntryKind
	FunctionV0    *ScSpecFunctionV0
	UdtStructV0   *ScSpecUdtStructV0
	UdtUnionV0    *ScSpecUdtUnionV0
	UdtEnumV0     *ScSpecUdtEnumV0
	UdtErrorEnumV0 *ScSpecUdtErrorEnumV0
}

func (s ScSpecEntry) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(s.Kind)); err != nil {
		return err
	}
	switch s.Kind {
	case ScSpecEntryKindScSpecEntryFunctionV0:
		return s.FunctionV0.EncodeTo(e)
	case ScSpecEntryKindScSpecEntryUdtStructV0:
		return s.UdtStructV0.EncodeTo(e)
	case ScSpecEntryKindScSpecEntryUdtUnionV0:
		return s.UdtUnionV0.EncodeTo(e)
	case ScSpecEntryKindScSpecEntryUdtEnumV0:
		return s.UdtEnumV0.EncodeTo(e)
	case ScSpecEntryKindScSpecEntryUdtErrorEnumV0:
		return s.UdtErrorEnumV0.EncodeTo(e)
	default:
		return errors.Errorf("unsupported spec entry kind %d", s.Kind)
	}
}

func (s *ScSpecEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	k, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	s.Kind = ScSpecEntryKind(k)
	switch s.Kind {
	case ScSpecEntryKindScSpecEntryFunctionV0:
		var v ScSpecFunctionV0
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		s.FunctionV0 = &v
	case ScSpecEntryKindScSpecEntryUdtStructV0:
		var v ScSpecUdtStructV0
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		s.UdtStructV0 = &v
	case ScSpecEntryKindScSpecEntryUdtUnionV0:
		var v ScSpecUdtUnionV0
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		s.UdtUnionV0 = &v
	case ScSpecEntryKindScSpecEntryUdtEnumV0:
		var v ScSpecUdtEnumV0
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		s.UdtEnumV0 = &v
	case ScSpecEntryKindScSpecEntryUdtErrorEnumV0:
		var v ScSpecUdtErrorEnumV0
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		s.UdtErrorEnumV0 = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported spec entry kind %d", s.Kind))
	}
	return d.offset - start, nil
}
