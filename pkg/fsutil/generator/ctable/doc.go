// Package ctable renders (extension, MIME type) pairs as a static C lookup table.
//
// The generated table is an array of two-pointer structs terminated by a
// { NULL, NULL } sentinel, meant to be scanned linearly from the top:
//
//	static struct MIME {
//	    const char* ext;
//	    const char* mime;
//	} MIME_TYPES[] = {
//	    { "html", "text/html" },
//	    { NULL, NULL }
//	};
//
// Key functionality:
//   - Generator: Render a pair sequence into the table
//   - QuoteC: Encode a value as a C string literal
package ctable
