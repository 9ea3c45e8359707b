package errors

import (
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const violationReasonMetadataPrefix = "_errors.violation_reason."

// ToGRPC converts the response into a status error carrying ErrorInfo and,
// for InvalidArgument, BadRequest details. Violation reasons travel in the
// ErrorInfo metadata because BadRequest has no reason field.
func (e ErrorResponse) ToGRPC() error {
	st := status.New(e.Code, e.Message)

	metadata := cloneDetails(e.Details)
	for _, v := range e.Violations {
		if v.Field == "" || v.Reason == "" {
			continue
		}
		if metadata == nil {
			metadata = map[string]string{}
		}
		metadata[violationReasonMetadataPrefix+v.Field] = v.Reason
	}

	if e.Reason != "" || len(metadata) > 0 || e.Domain != "" {
		ei := &errdetails.ErrorInfo{
			Reason:   string(e.Reason),
			Domain:   e.Domain,
			Metadata: metadata,
		}
		if st2, err := st.WithDetails(ei); err == nil {
			st = st2
		}
	}

	if len(e.Violations) > 0 && e.Code == codes.InvalidArgument {
		br := &errdetails.BadRequest{
			FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(e.Violations)),
		}
		for _, v := range e.Violations {
			desc := v.Description
			if desc == "" {
				desc = v.Reason
			}
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: desc,
			})
		}
		if st2, err := st.WithDetails(br); err == nil {
			st = st2
		}
	}

	return st.Err()
}

func FromGRPC(err error) ErrorResponse {
	st, ok := status.FromError(err)
	if !ok {
		return Unknown()
	}

	out := New(st.Message(), st.Code(), nil)
	var violationReasons map[string]string
	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			if x.GetReason() != "" {
				out.Reason = Reason(x.GetReason())
			}
			out.Domain = x.GetDomain()
			details := map[string]string{}
			for k, v := range x.GetMetadata() {
				field, isReason := strings.CutPrefix(k, violationReasonMetadataPrefix)
				if !isReason {
					details[k] = v
					continue
				}
				if field == "" {
					continue
				}
				if violationReasons == nil {
					violationReasons = map[string]string{}
				}
				violationReasons[field] = v
			}
			out = out.WithDetails(details)
		case *errdetails.BadRequest:
			for _, fv := range x.GetFieldViolations() {
				out.Violations = append(out.Violations, FieldViolation{
					Field:       fv.GetField(),
					Description: fv.GetDescription(),
				})
			}
		}
	}

	// ErrorInfo and BadRequest may arrive in either order.
	for i := range out.Violations {
		if r, ok := violationReasons[out.Violations[i].Field]; ok {
			out.Violations[i].Reason = r
		}
	}
	return out
}
