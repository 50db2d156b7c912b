package gateway

import (
	"github.com/luxurylounger/payment-token-service/token-service/domain"
	"github.com/pkg/errors"
)

// Wire shapes for the gateway's JSON API. Field order matters to the
// gateway, so these mirror its documented request layout.

type merchantAuthentication struct {
	Name           string `json:"name"`
	TransactionKey string `json:"transactionKey"`
}

type orderPayload struct {
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
	Description   string `json:"description,omitempty"`
}

type customerPayload struct {
	Email string `json:"email,omitempty"`
}

type billToPayload struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
	Country     string `json:"country,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type opaqueData struct {
	DataDescriptor string `json:"dataDescriptor"`
	DataValue      string `json:"dataValue"`
}

type paymentPayload struct {
	OpaqueData opaqueData `json:"opaqueData"`
}

type transactionPayload struct {
	TransactionType string           `json:"transactionType"`
	Amount          string           `json:"amount"`
	Payment         *paymentPayload  `json:"payment,omitempty"`
	Order           *orderPayload    `json:"order,omitempty"`
	Customer        *customerPayload `json:"customer,omitempty"`
	BillTo          *billToPayload   `json:"billTo,omitempty"`
}

type settingPayload struct {
	SettingName  string `json:"settingName"`
	SettingValue string `json:"settingValue"`
}

type hostedPaymentSettings struct {
	Setting []settingPayload `json:"setting"`
}

type hostedPagePayload struct {
	MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
	TransactionRequest     transactionPayload     `json:"transactionRequest"`
	HostedPaymentSettings  hostedPaymentSettings  `json:"hostedPaymentSettings"`
}

type createTransactionPayload struct {
	MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
	TransactionRequest     transactionPayload     `json:"transactionRequest"`
}

type hostedPageEnvelope struct {
	GetHostedPaymentPageRequest hostedPagePayload `json:"getHostedPaymentPageRequest"`
}

type createTransactionEnvelope struct {
	CreateTransactionRequest createTransactionPayload `json:"createTransactionRequest"`
}

type messagePayload struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

type messagesPayload struct {
	ResultCode string           `json:"resultCode"`
	Message    []messagePayload `json:"message"`
}

type transactionResponsePayload struct {
	ResponseCode string `json:"responseCode"`
	AuthCode     string `json:"authCode"`
	TransID      string `json:"transId"`
}

type gatewayResponse struct {
	Token               string                      `json:"token"`
	TransactionResponse *transactionResponsePayload `json:"transactionResponse"`
	Messages            messagesPayload             `json:"messages"`
}

// dataDescriptor identifies client-side tokenized payment data
const dataDescriptor = "COMMON.ACCEPT.INAPP.PAYMENT"

func buildHostedPageEnvelope(req *HostedPageRequest) hostedPageEnvelope {
	payload := hostedPagePayload{
		MerchantAuthentication: merchantAuthentication{
			Name:           req.Auth.APILoginID,
			TransactionKey: req.Auth.TransactionKey,
		},
		TransactionRequest: transactionPayload{
			TransactionType: req.Kind.GatewayType(),
			Amount:          req.Amount.String(),
			Order:           buildOrder(req.Order),
			Customer:        buildCustomer(req.Customer),
			BillTo:          buildBillTo(req.BillTo),
		},
		HostedPaymentSettings: hostedPaymentSettings{
			Setting: buildSettings(req.Settings),
		},
	}
	return hostedPageEnvelope{GetHostedPaymentPageRequest: payload}
}

func buildTransactionEnvelope(req *TransactionRequest) createTransactionEnvelope {
	payload := createTransactionPayload{
		MerchantAuthentication: merchantAuthentication{
			Name:           req.Auth.APILoginID,
			TransactionKey: req.Auth.TransactionKey,
		},
		TransactionRequest: transactionPayload{
			TransactionType: req.Kind.GatewayType(),
			Amount:          req.Amount.String(),
			Payment: &paymentPayload{
				OpaqueData: opaqueData{
					DataDescriptor: dataDescriptor,
					DataValue:      req.PaymentNonce,
				},
			},
			Order:    buildOrder(req.Order),
			Customer: buildCustomer(req.Customer),
			BillTo:   buildBillTo(req.BillTo),
		},
	}
	return createTransactionEnvelope{CreateTransactionRequest: payload}
}

func buildSettings(settings domain.Settings) []settingPayload {
	out := make([]settingPayload, 0, len(settings))
	for _, s := range settings {
		out = append(out, settingPayload{SettingName: s.Name, SettingValue: s.Value})
	}
	return out
}

func buildOrder(order *domain.Order) *orderPayload {
	if order == nil {
		return nil
	}
	return &orderPayload{
		InvoiceNumber: order.InvoiceNumber,
		Description:   order.Description,
	}
}

func buildCustomer(customer *domain.Customer) *customerPayload {
	if customer == nil {
		return nil
	}
	return &customerPayload{Email: customer.Email}
}

func buildBillTo(billTo *domain.BillingAddress) *billToPayload {
	if billTo == nil {
		return nil
	}
	return &billToPayload{
		FirstName:   billTo.FirstName,
		LastName:    billTo.LastName,
		Address:     billTo.Address,
		City:        billTo.City,
		State:       billTo.State,
		Zip:         billTo.Zip,
		Country:     billTo.Country,
		PhoneNumber: billTo.Phone,
	}
}

func mapResponse(resp *gatewayResponse) (*Result, error) {
	if resp.Messages.ResultCode == "" {
		return nil, errors.New("gateway response is missing a result code")
	}

	result := &Result{
		ResultCode: resp.Messages.ResultCode,
		Token:      resp.Token,
	}
	for _, m := range resp.Messages.Message {
		result.Messages = append(result.Messages, ResultMessage{Code: m.Code, Text: m.Text})
	}
	if tr := resp.TransactionResponse; tr != nil {
		result.TransactionID = tr.TransID
		result.AuthCode = tr.AuthCode
	}
	return result, nil
}
