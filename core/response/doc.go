// Package response normalizes handler results into status and body.
//
// A dispatched request always ends as an Envelope. Handlers signal failures
// with *HTTPError, which becomes {"detail": ...} with the error's status:
//
//	return nil, response.NewHTTPError(http.StatusNotFound, "Tool calc not found")
//
// # Shapes
//
// A Shape post-processes a successful payload before it is serialized.
// Shapes compose:
//
//	response.Model[User]()                      // mapping -> User
//	response.List(response.Model[User]())       // each element -> User
//	response.Map(nil, response.Model[User]())   // each value -> User
//
// Values a shape cannot convert pass through unchanged. Serialize then turns
// models into plain maps, recursively, so the body is JSON-ready.
//
// # HTTP
//
// JSON and JSONWithStatus return a Responder that writes a JSON body with
// json-iterator. JSONError writes any error in the {"detail": ...} form,
// hiding messages of errors that are not an *HTTPError.
package response
