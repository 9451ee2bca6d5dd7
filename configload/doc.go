/*
Package configload converts JSON configuration into value.Policy and
calc.Registry entries, mirroring factory/policy.go's JSON-to-struct shape:
non-developers can add a policy or a declarative calculation by editing
JSON, with no Go code change required.

JSON SCHEMA (policy):

	{
	  "decimal_places": 2,
	  "rounding": "half_up",
	  "none_text": "N/A",
	  "thousands_separator": true,
	  "negative_in_parentheses": true,
	  "percent_display": "percent",
	  "arithmetic_strict": false,
	  "cap_percentage_at": "1.00",
	  "display": {
	    "locale": "en-US",
	    "currency_code": "USD",
	    "currency_style": "symbol"
	  }
	}

JSON SCHEMA (calculation set):

	{
	  "namespace": "pricing",
	  "calculations": [
	    {"name": "gross_profit", "op": "subtract", "dependencies": ["sales", "cost"]},
	    {"name": "gross_margin_ratio", "op": "divide", "dependencies": ["gross_profit", "sales"]}
	  ]
	}

A calculation's "op" is one of the arithmetic.go binary/unary operators
(add, subtract, multiply, divide, power, negate, absolute); dependencies
are resolved positionally the same way a hand-written calc.Func would.
*/
package configload
