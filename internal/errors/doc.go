// Package errors provides the coded error type shared by every layer of the
// combat tracker.
//
// An *Error carries a Code, a user-facing message, an optional cause and
// metadata. Codes survive wrapping, so a repository NotFound stays NotFound
// after the orchestrator adds its own context:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load combat session")
//	}
//
// Checking a code:
//
//	if errors.IsNotFound(err) {
//	    // absent session
//	}
//
// Validation:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Transports
//
// ToGRPCError converts to a gRPC status, carrying metadata as a
// google.protobuf.Struct detail; FromGRPCError reverses it. Code.HTTPStatus
// maps codes for the JSON API.
//
// # Layer guidelines
//
// Repositories return NotFound / AlreadyExists / InvalidArgument and wrap
// storage failures. The orchestrator validates input and wraps repository
// errors. Handlers convert to the transport representation and report the
// failure to the notifier.
package errors
