package server

import (
	"io"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oarkflow/date"
	"github.com/oarkflow/log"

	"github.com/Autsav24/EDIX12/pkg/claimstatus"
	"github.com/Autsav24/EDIX12/pkg/eligibility"
	"github.com/Autsav24/EDIX12/pkg/remit"
	"github.com/Autsav24/EDIX12/pkg/textinput"
	"github.com/Autsav24/EDIX12/pkg/x12"
)

const requestIDKey = "request_id"

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// normalizeDate accepts flexible user-supplied dates ("2025-03-01",
// "03/01/2025") and normalizes them to CCYYMMDD. Values that do not parse
// pass through untouched; the codec treats them as opaque strings.
func normalizeDate(s string) string {
	if s == "" {
		return ""
	}
	if t, err := date.Parse(s); err == nil {
		return t.Format("20060102")
	}
	return s
}

// inputText extracts the EDI payload from a multipart upload ("file"
// field) or the raw request body, then conditions it through textinput.
func inputText(c *fiber.Ctx) (string, error) {
	if header, err := c.FormFile("file"); err == nil {
		f, err := header.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		raw, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return textinput.Decode(raw)
	}
	return textinput.Decode(c.Body())
}

// assignControls fills zero control numbers from the persistent counter.
// One counter value feeds all three levels; the envelopes here carry a
// single group and transaction set.
func (s *Server) assignControls(isa, gs, st *int) error {
	if *isa != 0 && *gs != 0 && *st != 0 {
		return nil
	}
	n, err := s.counter.Next()
	if err != nil {
		return err
	}
	if *isa == 0 {
		*isa = n
	}
	if *gs == 0 {
		*gs = n
	}
	if *st == 0 {
		*st = n
	}
	return nil
}

func buildResponse(c *fiber.Ctx, doc string) error {
	warnings := x12.ValidateEnvelope(doc)
	if warnings == nil {
		warnings = []string{}
	}
	return c.JSON(fiber.Map{
		"edi":        doc,
		"warnings":   warnings,
		"request_id": requestID(c),
	})
}

func (s *Server) healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) profilesHandler(c *fiber.Ctx) error {
	keys := make([]string, 0, len(s.profiles))
	for key := range s.profiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]eligibility.Profile, 0, len(keys))
	for _, key := range keys {
		out = append(out, s.profiles[key])
	}
	return c.JSON(out)
}

type build270Request struct {
	Profile string                 `json:"profile"`
	Request eligibility.Request270 `json:"request"`
}

func (s *Server) build270Handler(c *fiber.Ctx) error {
	var body build270Request
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	profile, ok := s.profiles[body.Profile]
	if body.Profile == "" {
		profile, ok = eligibility.DefaultProfile(), true
	}
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown profile: "+body.Profile)
	}

	req := body.Request
	if err := s.assignControls(&req.InterchangeControl, &req.GroupControl, &req.TransactionControl); err != nil {
		return err
	}
	if req.SenderID == "" {
		req.SenderID = s.cfg.SenderID
	}
	if req.ReceiverID == "" {
		req.ReceiverID = s.cfg.ReceiverID
	}
	req.DateStart = normalizeDate(req.DateStart)
	req.DateEnd = normalizeDate(req.DateEnd)
	req.DOB = normalizeDate(req.DOB)

	doc := eligibility.Build270(req, profile)
	log.Printf("[%s] built 270 for payer %s (%d bytes)", requestID(c), req.PayerID, len(doc))
	return buildResponse(c, doc)
}

func (s *Server) parse271Handler(c *fiber.Ctx) error {
	text, err := inputText(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	rec := eligibility.Parse271(text)
	log.Printf("[%s] parsed 271: %d benefit rows, %d warnings",
		requestID(c), len(rec.Benefits), len(rec.Warnings))
	return c.JSON(rec)
}

func (s *Server) build276Handler(c *fiber.Ctx) error {
	var req claimstatus.Request276
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.assignControls(&req.InterchangeControl, &req.GroupControl, &req.TransactionControl); err != nil {
		return err
	}
	if req.SenderID == "" {
		req.SenderID = s.cfg.SenderID
	}
	if req.ReceiverID == "" {
		req.ReceiverID = s.cfg.ReceiverID
	}
	req.DateOfService = normalizeDate(req.DateOfService)

	doc := claimstatus.Build276(req)
	log.Printf("[%s] built 276 for payer %s (%d bytes)", requestID(c), req.PayerID, len(doc))
	return buildResponse(c, doc)
}

func (s *Server) parse277Handler(c *fiber.Ctx) error {
	text, err := inputText(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	rec := claimstatus.Parse277(text)
	log.Printf("[%s] parsed 277: %d claims, %d warnings",
		requestID(c), len(rec.Claims), len(rec.Warnings))
	return c.JSON(rec)
}

func (s *Server) build837Handler(c *fiber.Ctx) error {
	var req remit.Request837
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.assignControls(&req.InterchangeControl, &req.GroupControl, &req.TransactionControl); err != nil {
		return err
	}
	if req.SenderID == "" {
		req.SenderID = s.cfg.SenderID
	}
	if req.ReceiverID == "" {
		req.ReceiverID = s.cfg.ReceiverID
	}
	req.DOSStart = normalizeDate(req.DOSStart)
	req.DOSEnd = normalizeDate(req.DOSEnd)

	doc := remit.Build837(req)
	log.Printf("[%s] built 837 for claim %s (%d bytes)", requestID(c), req.ClaimID, len(doc))
	return buildResponse(c, doc)
}

func (s *Server) build835Handler(c *fiber.Ctx) error {
	var req remit.Request835
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.assignControls(&req.InterchangeControl, &req.GroupControl, &req.TransactionControl); err != nil {
		return err
	}
	req.PaymentDate = normalizeDate(req.PaymentDate)

	doc := remit.Build835(req)
	log.Printf("[%s] built 835 for check %s (%d bytes)", requestID(c), req.CheckNumber, len(doc))
	return buildResponse(c, doc)
}

func (s *Server) parse835Handler(c *fiber.Ctx) error {
	text, err := inputText(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	rec := remit.Parse835(text)
	log.Printf("[%s] parsed 835: %d claims, total paid %.2f",
		requestID(c), len(rec.Claims), rec.TotalPaid)
	return c.JSON(rec)
}

func (s *Server) validateHandler(c *fiber.Ctx) error {
	text, err := inputText(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	warnings := x12.ValidateEnvelope(text)
	if warnings == nil {
		warnings = []string{}
	}
	return c.JSON(fiber.Map{
		"valid":      len(warnings) == 0,
		"warnings":   warnings,
		"request_id": requestID(c),
	})
}
