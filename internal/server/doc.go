// Package server exposes the measurement pipeline over HTTP.
//
// Two upload surfaces are provided:
//
//   - POST /upload_image accepts a JSON body
//     {"image": "data:image/png;base64,..."} with a PNG/JPEG data-URI
//     allowlist, the contract of the original browser client.
//   - POST /measure accepts a multipart form with a "file" part.
//
// Both run the same pipeline and return JSON. Adding ?debug=1 includes
// a base64 PNG overlay of the detected contours and the winning
// bounding box.
//
// # Status Mapping
//
// Rejected input (undecodable bytes, disallowed type, degenerate
// dimensions) maps to 400; a well-formed image in which no object
// could be found maps to 422, deliberately distinct so clients can
// tell "bad upload" from "could not measure"; everything else is 500.
//
// # CORS
//
// All origins are allowed, matching the original service. The core
// pipeline never logs; request-level logging happens here.
package server
