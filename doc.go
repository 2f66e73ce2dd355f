/*
Package weight implements exact physical weights in various units of mass.
It leverages the [decimal] package's capabilities for handling decimal
floating-point numbers and combines it with a [Unit] type for representing
units of mass.

# Features

  - Immutable weights, ensuring safe usage across multiple goroutines
  - Parsing of human-readable text such as "3.5 lb" or "12"
  - Conversion between grams, ounces, pounds, milligrams and kilograms
    without binary floating-point
  - Arithmetic and comparison operations across different units
  - JSON, text and database/sql serialization

# Representation

The package consists of two main types: Weight and Unit.
A Weight consists of a Unit and a decimal.Decimal magnitude.
The Unit type is implemented as an integer index into in-memory arrays
containing the identifier, display name and abbreviation of each unit.
The dimensionless unit [Count] is the zero value and stands for a plain
number of items.

# Conversions

Conversions are described by a static table of factors, see [LookupConv].
Factors are derived from the reference values 28.34952 grams per ounce
and 453.59237 grams per pound by exact decimal multiplication.
Each direction of a pair stores whether its factor multiplies or divides,
so converting grams to ounces divides by 28.34952 while converting ounces
to grams multiplies by the same digits.

A Count converts to and from every physical unit with its magnitude
unchanged.

# Operations

Binary operations follow a left-biased unit convention: the right operand is
converted to the unit of the left operand, and the result is expressed in the
unit of the left operand.
For example, 5 lb + 16 oz is 6 lb, while 16 oz + 5 lb is 96 oz.

Dividing one weight by another returns a [Quotient], which is either a weight
(a physical weight divided by a count) or a bare ratio (weights sharing
a dimension).

# Rounding

Implicit rounding is applied when a result exceeds 19 digits, in accordance
with the [decimal] package.
Explicit rounding is available through Round, Trunc, Ceil and Floor.

# Errors

Errors may occur during parsing, unit conversion and arithmetic operations
(e.g., division by zero, coefficient overflow).
The sentinel errors [ErrInvalidArgument], [ErrInvalidWeight] and
[ErrNoConversion] can be matched with [errors.Is].
*/
package weight
