package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"cartrack/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	It("decodes a valid payload", func() {
		var login payload.LoginRequest
		err := dv.DecodeJSONPayload(jsonRequest(`{"username":"someone","password":"pass"}`), &login)
		Expect(err).NotTo(HaveOccurred())
		Expect(login.Username).To(Equal("someone"))
	})

	It("rejects unknown fields", func() {
		var login payload.LoginRequest
		err := dv.DecodeJSONPayload(jsonRequest(`{"username":"someone","password":"pass","admin":true}`), &login)
		Expect(err).To(MatchError(ContainSubstring("unknown field")))
	})

	It("rejects malformed JSON", func() {
		var login payload.LoginRequest
		err := dv.DecodeJSONPayload(jsonRequest(`{"username":`), &login)
		Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("runs the payload's own validation", func() {
		var login payload.LoginRequest
		err := dv.DecodeJSONPayload(jsonRequest(`{"username":"someone"}`), &login)
		Expect(err).To(MatchError(ContainSubstring("validating payload")))
	})
})

var _ = Describe("CreateUserRequest", func() {
	It("accepts a complete payload", func() {
		r := payload.CreateUserRequest{
			Username: "someone",
			Password: "pass",
			Role:     "admin",
			Name:     "Some One",
			Email:    "someone@example.com",
		}
		Expect(r.Validate()).To(Succeed())
	})

	It("rejects unknown roles", func() {
		r := payload.CreateUserRequest{
			Username: "someone",
			Password: "pass",
			Role:     "superadmin",
			Name:     "Some One",
		}
		Expect(r.Validate()).To(HaveOccurred())
	})

	It("rejects a malformed email", func() {
		r := payload.CreateUserRequest{
			Username: "someone",
			Password: "pass",
			Name:     "Some One",
			Email:    "not-an-email",
		}
		Expect(r.Validate()).To(HaveOccurred())
	})

	It("requires username, password and name", func() {
		Expect(payload.CreateUserRequest{}.Validate()).To(HaveOccurred())
	})
})

var _ = Describe("CreateVehicleRequest", func() {
	var r payload.CreateVehicleRequest

	BeforeEach(func() {
		r = payload.CreateVehicleRequest{
			VIN:         "1HGBH41JXMN109186",
			Lot:         "LOT-42",
			Year:        2021,
			Make:        "Honda",
			Model:       "Civic",
			Destination: "Dubai",
		}
	})

	It("accepts a complete payload", func() {
		Expect(r.Validate()).To(Succeed())
	})

	It("rejects a year outside the plausible range", func() {
		r.Year = 1850
		Expect(r.Validate()).To(HaveOccurred())
	})

	It("treats an empty assignment as unassigned", func() {
		empty := ""
		r.AssignedToUserID = &empty
		Expect(r.ToMessage().AssignedToUserID).To(BeNil())
	})
})

var _ = Describe("VehiclePatchRequest", func() {
	var dv payload.DecodeValidator

	It("leaves the assignment alone when the field is absent", func() {
		var r payload.VehiclePatchRequest
		err := dv.DecodeJSONPayload(jsonRequest(`{"note":"updated"}`), &r)
		Expect(err).NotTo(HaveOccurred())

		patch := r.ToPatch()
		Expect(patch.ClearAssignment).To(BeFalse())
		Expect(patch.AssignedToUserID).To(BeNil())
		Expect(patch.Note).To(HaveValue(Equal("updated")))
	})

	It("clears the assignment on an explicit null", func() {
		var r payload.VehiclePatchRequest
		err := dv.DecodeJSONPayload(jsonRequest(`{"assignedToUserId":null}`), &r)
		Expect(err).NotTo(HaveOccurred())

		Expect(r.ToPatch().ClearAssignment).To(BeTrue())
	})

	It("clears the assignment on an empty string", func() {
		var r payload.VehiclePatchRequest
		err := dv.DecodeJSONPayload(jsonRequest(`{"assignedToUserId":""}`), &r)
		Expect(err).NotTo(HaveOccurred())

		Expect(r.ToPatch().ClearAssignment).To(BeTrue())
	})

	It("reassigns on a concrete user id", func() {
		var r payload.VehiclePatchRequest
		err := dv.DecodeJSONPayload(jsonRequest(`{"assignedToUserId":"user-2"}`), &r)
		Expect(err).NotTo(HaveOccurred())

		patch := r.ToPatch()
		Expect(patch.ClearAssignment).To(BeFalse())
		Expect(patch.AssignedToUserID).To(HaveValue(Equal("user-2")))
	})
})

var _ = Describe("RemoveInvoiceRequest", func() {
	It("requires the invoice reference", func() {
		Expect(payload.RemoveInvoiceRequest{}.Validate()).To(HaveOccurred())
		Expect(payload.RemoveInvoiceRequest{InvoiceURL: "/api/files/doc.pdf"}.Validate()).To(Succeed())
	})
})
