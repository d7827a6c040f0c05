/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package gx

import (
	"encoding/base64"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/botobag/graphson/graphson"
	"github.com/botobag/graphson/token"

	"github.com/shopspring/decimal"
)

// ModuleName is the name of the module returned by Module.
const ModuleName = "graphson-gx"

// Types of the extended catalogue
var (
	bigDecimalType     = reflect.TypeOf(decimal.Decimal{})
	bigIntegerType     = reflect.TypeOf((*big.Int)(nil))
	byteType           = reflect.TypeOf(int8(0))
	int16Type          = reflect.TypeOf(int16(0))
	byteBufferType     = reflect.TypeOf([]byte(nil))
	charType           = reflect.TypeOf(Char(0))
	durationType       = reflect.TypeOf(time.Duration(0))
	instantType        = reflect.TypeOf(Instant{})
	localDateType      = reflect.TypeOf(LocalDate{})
	localDateTimeType  = reflect.TypeOf(LocalDateTime{})
	localTimeType      = reflect.TypeOf(LocalTime{})
	monthDayType       = reflect.TypeOf(MonthDay{})
	offsetDateTimeType = reflect.TypeOf(OffsetDateTime{})
	offsetTimeType     = reflect.TypeOf(OffsetTime{})
	periodType         = reflect.TypeOf(Period{})
	yearType           = reflect.TypeOf(Year(0))
	yearMonthType      = reflect.TypeOf(YearMonth{})
	zonedDateTimeType  = reflect.TypeOf(ZonedDateTime{})
	zoneOffsetType     = reflect.TypeOf(ZoneOffset(0))
)

func init() {
	graphson.RegisterModuleProvider(ModuleName, Module)
}

// Module returns the extended types module for version. V1 has no tags for the extended types; their
// values are written untagged and can only be read back with an expected type.
func Module(version graphson.Version) *graphson.Module {
	module := &graphson.Module{
		Name:      ModuleName,
		Namespace: graphson.ExtensionNamespace,
	}

	tag := func(localName string) string {
		if version == graphson.V1 {
			return ""
		}
		return localName
	}

	module.Add(bigDecimalType, tag("BigDecimal"), graphson.ShapeScalar, writeBigDecimal, readBigDecimal)
	module.Add(bigIntegerType, tag("BigInteger"), graphson.ShapeScalar, writeBigInteger, readBigInteger)
	module.Add(byteType, tag("Byte"), graphson.ShapeScalar, writeByte, readByte)
	module.Add(int16Type, tag("Int16"), graphson.ShapeScalar, writeInt16, readInt16)
	module.Add(byteBufferType, tag("ByteBuffer"), graphson.ShapeScalar, writeByteBuffer, readByteBuffer)
	module.Add(charType, tag("Char"), graphson.ShapeScalar, writeStringer, readChar)
	module.Add(durationType, tag("Duration"), graphson.ShapeScalar, writeDuration, readDuration)

	module.Add(instantType, tag("Instant"), graphson.ShapeScalar, writeStringer,
		readTemporal(instantType, func(s string) (interface{}, error) { return ParseInstant(s) }))
	module.Add(localDateType, tag("LocalDate"), graphson.ShapeScalar, writeStringer,
		readTemporal(localDateType, func(s string) (interface{}, error) { return ParseLocalDate(s) }))
	module.Add(localDateTimeType, tag("LocalDateTime"), graphson.ShapeScalar, writeStringer,
		readTemporal(localDateTimeType, func(s string) (interface{}, error) { return ParseLocalDateTime(s) }))
	module.Add(localTimeType, tag("LocalTime"), graphson.ShapeScalar, writeStringer,
		readTemporal(localTimeType, func(s string) (interface{}, error) { return ParseLocalTime(s) }))
	module.Add(monthDayType, tag("MonthDay"), graphson.ShapeScalar, writeStringer,
		readTemporal(monthDayType, func(s string) (interface{}, error) { return ParseMonthDay(s) }))
	module.Add(offsetDateTimeType, tag("OffsetDateTime"), graphson.ShapeScalar, writeStringer,
		readTemporal(offsetDateTimeType, func(s string) (interface{}, error) { return ParseOffsetDateTime(s) }))
	module.Add(offsetTimeType, tag("OffsetTime"), graphson.ShapeScalar, writeStringer,
		readTemporal(offsetTimeType, func(s string) (interface{}, error) { return ParseOffsetTime(s) }))
	module.Add(periodType, tag("Period"), graphson.ShapeScalar, writeStringer,
		readTemporal(periodType, func(s string) (interface{}, error) { return ParsePeriod(s) }))
	module.Add(yearType, tag("Year"), graphson.ShapeScalar, writeStringer,
		readTemporal(yearType, func(s string) (interface{}, error) { return ParseYear(s) }))
	module.Add(yearMonthType, tag("YearMonth"), graphson.ShapeScalar, writeStringer,
		readTemporal(yearMonthType, func(s string) (interface{}, error) { return ParseYearMonth(s) }))
	module.Add(zonedDateTimeType, tag("ZonedDateTime"), graphson.ShapeScalar, writeStringer,
		readTemporal(zonedDateTimeType, func(s string) (interface{}, error) { return ParseZonedDateTime(s) }))
	module.Add(zoneOffsetType, tag("ZoneOffset"), graphson.ShapeScalar, writeStringer,
		readTemporal(zoneOffsetType, func(s string) (interface{}, error) { return ParseZoneOffset(s) }))

	return module
}

// malformed builds the error for a payload that cannot be read as a value of t.
func malformed(t reflect.Type, message string, err error) error {
	args := []interface{}{graphson.Op("graphson.Reader.ReadValue"), t, graphson.ErrKindMalformedEnvelope}
	if err != nil {
		args = append(args, err)
	}
	return graphson.NewError(message, args...)
}

func writeStringer(w *graphson.Writer, v interface{}) error {
	w.WriteString(v.(interface{ String() string }).String())
	return nil
}

// readTemporal returns a deserializer reading a string with parse.
func readTemporal(t reflect.Type, parse func(s string) (interface{}, error)) graphson.DeserializeFunc {
	return func(r *graphson.Reader) (interface{}, error) {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		v, err := parse(s)
		if err != nil {
			return nil, malformed(t, "cannot parse "+strconv.Quote(s), err)
		}
		return v, nil
	}
}

// readNumberLiteral accepts a JSON number or a string holding one.
func readNumberLiteral(r *graphson.Reader) (string, error) {
	if r.Current().Kind == token.KindString {
		return r.ReadString()
	}
	return r.ReadNumber()
}

func writeBigDecimal(w *graphson.Writer, v interface{}) error {
	w.WriteRawNumber(v.(decimal.Decimal).String())
	return nil
}

func readBigDecimal(r *graphson.Reader) (interface{}, error) {
	literal, err := readNumberLiteral(r)
	if err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return nil, malformed(bigDecimalType, "invalid decimal "+strconv.Quote(literal), err)
	}
	return d, nil
}

func writeBigInteger(w *graphson.Writer, v interface{}) error {
	w.WriteRawNumber(v.(*big.Int).String())
	return nil
}

func readBigInteger(r *graphson.Reader) (interface{}, error) {
	literal, err := readNumberLiteral(r)
	if err != nil {
		return nil, err
	}
	i, ok := new(big.Int).SetString(literal, 10)
	if !ok {
		// Integral values written with an exponent, such as 1e30.
		d, err := decimal.NewFromString(literal)
		if err != nil || !d.Equal(d.Truncate(0)) {
			return nil, malformed(bigIntegerType, "invalid integer "+strconv.Quote(literal), err)
		}
		i = d.BigInt()
	}
	return i, nil
}

func writeByte(w *graphson.Writer, v interface{}) error {
	w.WriteInt32(int32(v.(int8)))
	return nil
}

func readByte(r *graphson.Reader) (interface{}, error) {
	i, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if i < math.MinInt8 || i > math.MaxInt8 {
		return nil, graphson.NewError("number "+strconv.Itoa(int(i))+" does not fit in a byte",
			graphson.Op("graphson.Reader.ReadValue"), byteType, graphson.ErrKindTypeMismatch)
	}
	return int8(i), nil
}

func writeInt16(w *graphson.Writer, v interface{}) error {
	w.WriteInt32(int32(v.(int16)))
	return nil
}

func readInt16(r *graphson.Reader) (interface{}, error) {
	i, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if i < math.MinInt16 || i > math.MaxInt16 {
		return nil, graphson.NewError("number "+strconv.Itoa(int(i))+" does not fit in a 16-bit integer",
			graphson.Op("graphson.Reader.ReadValue"), int16Type, graphson.ErrKindTypeMismatch)
	}
	return int16(i), nil
}

func writeByteBuffer(w *graphson.Writer, v interface{}) error {
	w.WriteString(base64.StdEncoding.EncodeToString(v.([]byte)))
	return nil
}

func readByteBuffer(r *graphson.Reader) (interface{}, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, malformed(byteBufferType, "invalid base64 data", err)
	}
	return b, nil
}

func readChar(r *graphson.Reader) (interface{}, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	c, err := ParseChar(s)
	if err != nil {
		return nil, malformed(charType, "cannot parse "+strconv.Quote(s), err)
	}
	return c, nil
}

func writeDuration(w *graphson.Writer, v interface{}) error {
	w.WriteString(FormatDuration(v.(time.Duration)))
	return nil
}

func readDuration(r *graphson.Reader) (interface{}, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	d, err := ParseDuration(s)
	if err != nil {
		return nil, malformed(durationType, "cannot parse "+strconv.Quote(s), err)
	}
	return d, nil
}
