package grammar

import (
	"github.com/ghettovoice/abnf"
)

func lit(s string) abnf.Operator { return abnf.Literal(`"`+s+`"`, []byte(s)) }

func rng(key string, lo, hi byte) abnf.Operator {
	return abnf.Range(key, []byte{lo}, []byte{hi})
}

// core rules, RFC 5234 appendix B.1
var (
	alpha  = abnf.Alt("ALPHA", rng("%x41-5A", 'A', 'Z'), rng("%x61-7A", 'a', 'z'))
	digit  = rng("DIGIT", '0', '9')
	hexdig = abnf.Alt("HEXDIG", digit, rng("%x41-46", 'A', 'F'), rng("%x61-66", 'a', 'f'))
)

var (
	unreserved = abnf.Alt("unreserved", alpha, digit, lit("-"), lit("."), lit("_"), lit("~"))
	subDelims  = abnf.Alt("sub-delims",
		lit("!"), lit("$"), lit("&"), lit("'"), lit("("), lit(")"),
		lit("*"), lit("+"), lit(","), lit(";"), lit("="),
	)
	pctEncoded = abnf.Concat("pct-encoded", lit("%"), hexdig, hexdig)
	pchar      = abnf.Alt("pchar", unreserved, pctEncoded, subDelims, lit(":"), lit("@"))
)

var scheme = abnf.Concat("scheme",
	alpha,
	abnf.Repeat0Inf("*( ALPHA / DIGIT / \"+\" / \"-\" / \".\" )",
		abnf.Alt("ALPHA / DIGIT / \"+\" / \"-\" / \".\"", alpha, digit, lit("+"), lit("-"), lit(".")),
	),
)

var userinfo = abnf.Repeat0Inf("userinfo", abnf.Alt("userinfo-char", unreserved, pctEncoded, subDelims, lit(":")))

var port = abnf.Repeat0Inf("port", digit)

var decOctet = abnf.Alt("dec-octet",
	digit,
	abnf.Concat("%x31-39 DIGIT", rng("%x31-39", '1', '9'), digit),
	abnf.Concat("\"1\" 2DIGIT", lit("1"), digit, digit),
	abnf.Concat("\"2\" %x30-34 DIGIT", lit("2"), rng("%x30-34", '0', '4'), digit),
	abnf.Concat("\"25\" %x30-35", lit("25"), rng("%x30-35", '0', '5')),
)

var ipv4Address = abnf.Concat("IPv4address",
	decOctet, lit("."), decOctet, lit("."), decOctet, lit("."), decOctet,
)

var (
	h16      = abnf.Repeat("h16", 1, 4, hexdig)
	h16Colon = abnf.Concat("h16 \":\"", h16, lit(":"))
	ls32     = abnf.Alt("ls32", abnf.Concat("h16 \":\" h16", h16, lit(":"), h16), ipv4Address)
	dcolon   = lit("::")
)

// elidedHead is [ *n( h16 ":" ) h16 ].
func elidedHead(n int) abnf.Operator {
	if n == 0 {
		return abnf.Optional("[ h16 ]", h16)
	}
	return abnf.Optional("[ *( h16 \":\" ) h16 ]",
		abnf.Concat("*( h16 \":\" ) h16", abnf.Repeat("*( h16 \":\" )", 0, uint(n), h16Colon), h16),
	)
}

var ipv6Address = abnf.Alt("IPv6address",
	abnf.Concat("6( h16 \":\" ) ls32", abnf.RepeatN("6( h16 \":\" )", 6, h16Colon), ls32),
	abnf.Concat("\"::\" 5( h16 \":\" ) ls32", dcolon, abnf.RepeatN("5( h16 \":\" )", 5, h16Colon), ls32),
	abnf.Concat("[ h16 ] \"::\" 4( h16 \":\" ) ls32", elidedHead(0), dcolon, abnf.RepeatN("4( h16 \":\" )", 4, h16Colon), ls32),
	abnf.Concat("[ *1( h16 \":\" ) h16 ] \"::\" 3( h16 \":\" ) ls32", elidedHead(1), dcolon, abnf.RepeatN("3( h16 \":\" )", 3, h16Colon), ls32),
	abnf.Concat("[ *2( h16 \":\" ) h16 ] \"::\" 2( h16 \":\" ) ls32", elidedHead(2), dcolon, abnf.RepeatN("2( h16 \":\" )", 2, h16Colon), ls32),
	abnf.Concat("[ *3( h16 \":\" ) h16 ] \"::\" h16 \":\" ls32", elidedHead(3), dcolon, h16Colon, ls32),
	abnf.Concat("[ *4( h16 \":\" ) h16 ] \"::\" ls32", elidedHead(4), dcolon, ls32),
	abnf.Concat("[ *5( h16 \":\" ) h16 ] \"::\" h16", elidedHead(5), dcolon, h16),
	abnf.Concat("[ *6( h16 \":\" ) h16 ] \"::\"", elidedHead(6), dcolon),
)

var ipvFuture = abnf.Concat("IPvFuture",
	lit("v"),
	abnf.Repeat1Inf("1*HEXDIG", hexdig),
	lit("."),
	abnf.Repeat1Inf("1*( unreserved / sub-delims / \":\" )", abnf.Alt("unreserved / sub-delims / \":\"", unreserved, subDelims, lit(":"))),
)

var ipLiteral = abnf.Concat("IP-literal", lit("["), abnf.Alt("IPv6address / IPvFuture", ipv6Address, ipvFuture), lit("]"))

var regName = abnf.Repeat0Inf("reg-name", abnf.Alt("reg-name-char", unreserved, pctEncoded, subDelims))

var host = abnf.Alt("host", ipLiteral, ipv4Address, regName)

var authority = abnf.Concat("authority",
	abnf.Optional("[ userinfo \"@\" ]", abnf.Concat("userinfo \"@\"", userinfo, lit("@"))),
	host,
	abnf.Optional("[ \":\" port ]", abnf.Concat("\":\" port", lit(":"), port)),
)

var (
	segment     = abnf.Repeat0Inf("segment", pchar)
	segmentNZ   = abnf.Repeat1Inf("segment-nz", pchar)
	segmentNZNC = abnf.Repeat1Inf("segment-nz-nc", abnf.Alt("segment-nz-nc-char", unreserved, pctEncoded, subDelims, lit("@")))
	slashSegs   = abnf.Repeat0Inf("*( \"/\" segment )", abnf.Concat("\"/\" segment", lit("/"), segment))

	pathAbempty  = abnf.Concat("path-abempty", slashSegs)
	pathAbsolute = abnf.Concat("path-absolute", lit("/"), abnf.Optional("[ segment-nz *( \"/\" segment ) ]", abnf.Concat("segment-nz *( \"/\" segment )", segmentNZ, slashSegs)))
	pathNoscheme = abnf.Concat("path-noscheme", segmentNZNC, slashSegs)
	pathRootless = abnf.Concat("path-rootless", segmentNZ, slashSegs)
)

var (
	query    = abnf.Repeat0Inf("query", abnf.Alt("query-char", pchar, lit("/"), lit("?")))
	fragment = abnf.Repeat0Inf("fragment", abnf.Alt("fragment-char", pchar, lit("/"), lit("?")))
)

// path-empty is expressed through the enclosing Optional.
var hierPart = abnf.Alt("hier-part",
	abnf.Concat("\"//\" authority path-abempty", lit("//"), authority, pathAbempty),
	abnf.Optional("path-absolute / path-rootless / path-empty", abnf.Alt("path-absolute / path-rootless", pathAbsolute, pathRootless)),
)

var relativePart = abnf.Alt("relative-part",
	abnf.Concat("\"//\" authority path-abempty", lit("//"), authority, pathAbempty),
	abnf.Optional("path-absolute / path-noscheme / path-empty", abnf.Alt("path-absolute / path-noscheme", pathAbsolute, pathNoscheme)),
)

var (
	optQuery    = abnf.Optional("[ \"?\" query ]", abnf.Concat("\"?\" query", lit("?"), query))
	optFragment = abnf.Optional("[ \"#\" fragment ]", abnf.Concat("\"#\" fragment", lit("#"), fragment))
)

var uri = abnf.Concat("URI", scheme, lit(":"), hierPart, optQuery, optFragment)

var relativeRef = abnf.Concat("relative-ref", relativePart, optQuery, optFragment)

var uriReference = abnf.Alt("URI-reference", uri, relativeRef)
