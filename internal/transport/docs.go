// package transport contains the HTTP/1.1 *message syntax* side of the server:
// reading a request off a connection, parsing its request line and
// rendering a response back into wire bytes.
//
// the accepted syntax is deliberately narrow. a request line is
//
//	GET <path> <protocol>\n
//
// with the path taken verbatim, and responses are framed as
//
//	<protocol> <status-text>EOL
//	<key>: <val>EOL
//	EOL
//	<body>
//
// where EOL is a bare "\n" under [FramingLF] and "\r\n" under [FramingCRLF],
// see RFC9112 section 2.2 on why recipients are expected to accept the former.

package transport
