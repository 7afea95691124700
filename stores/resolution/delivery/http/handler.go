package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/delivery"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/middleware"
)

type handler struct {
	resolution domain.ResolutionUsecase
}

func New(e *echo.Echo, resolution domain.ResolutionUsecase) {
	h := &handler{
		resolution,
	}

	g := e.Group("/domains")
	g.GET("/:domain", h.resolve)
	g.GET("/:domain/owner", h.owner)
	g.GET("/:domain/resolver", h.resolver)
	g.GET("/:domain/namehash", h.namehash)
	g.GET("/:domain/records", h.records)
	g.GET("/:domain/records/:key", h.record)
	g.GET("/:domain/dns", h.dns)
	g.GET("/:domain/twitter", h.twitter)
	g.GET("/:domain/addr/:ticker", h.addr)

	e.GET("/reverse/:address", h.reverse, middleware.IsValidAddress("address"))
	e.GET("/childhash", h.childhash)
	e.POST("/owners", h.batchOwners)
}

type domainParams struct {
	Domain string `param:"domain" validate:"required"`
}

func bindDomain(c echo.Context) (domainParams, error) {
	p := domainParams{}
	if err := c.Bind(&p); err != nil {
		return p, err
	}
	if err := c.Validate(&p); err != nil {
		return p, err
	}
	return p, nil
}

// resolve
//
//	@Summary		Resolve a domain
//	@Description	Full resolution: addresses, meta and structured records
//	@Tags			domains
//	@Produce		json
//	@Param			domain	path		string	true	"domain name"	example(brad.crypto)
//	@Success		200		{object}	domain.ResolutionResponse
//	@Failure		400
//	@Failure		500
//	@Router			/domains/{domain} [get]
func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p, err := bindDomain(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.resolution.Resolve(ctx, p.Domain)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// owner
//
//	@Summary	Get domain owner
//	@Tags		domains
//	@Produce	json
//	@Param		domain	path		string	true	"domain name"	example(brad.zil)
//	@Success	200		{string}	string
//	@Failure	404
//	@Router		/domains/{domain}/owner [get]
func (h *handler) owner(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p, err := bindDomain(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	owner, err := h.resolution.Owner(ctx, p.Domain)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, owner)
}

func (h *handler) resolver(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p, err := bindDomain(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	resolver, err := h.resolution.Resolver(ctx, p.Domain)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, resolver)
}

func (h *handler) namehash(c echo.Context) error {
	p, err := bindDomain(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	hash, err := h.resolution.Namehash(p.Domain)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, hash)
}

// records
//
//	@Summary		Get domain records
//	@Description	Flat record map for the given keys, every record when no key is given
//	@Tags			domains
//	@Produce		json
//	@Param			domain	path		string		true	"domain name"	example(brad.crypto)
//	@Param			key		query		[]string	false	"record keys"	collectionFormat(multi)
//	@Success		200		{object}	map[string]string
//	@Failure		501
//	@Router			/domains/{domain}/records [get]
func (h *handler) records(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Domain string   `param:"domain" validate:"required"`
		Keys   []string `query:"key"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	var (
		res map[string]string
		err error
	)
	if len(p.Keys) == 0 {
		res, err = h.resolution.AllRecords(ctx, p.Domain)
	} else {
		res, err = h.resolution.Records(ctx, p.Domain, p.Keys)
	}
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) record(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Domain string `param:"domain" validate:"required"`
		Key    string `param:"key" validate:"required"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	value, err := h.resolution.Record(ctx, p.Domain, p.Key)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, value)
}

// dns
//
//	@Summary	Get dns records of a domain
//	@Tags		domains
//	@Produce	json
//	@Param		domain	path	string		true	"domain name"	example(udtestdev-check-ipfs.crypto)
//	@Param		type	query	[]string	true	"record types"	collectionFormat(multi)	example(A)
//	@Success	200		{array}	domain.DnsRecord
//	@Failure	400
//	@Router		/domains/{domain}/dns [get]
func (h *handler) dns(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Domain string   `param:"domain" validate:"required"`
		Types  []string `query:"type" validate:"required,min=1"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.resolution.Dns(ctx, p.Domain, p.Types)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) twitter(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p, err := bindDomain(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	handle, err := h.resolution.Twitter(ctx, p.Domain)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, handle)
}

// addr
//
//	@Summary		Get a crypto address of a domain
//	@Description	Multi chain tokens take the chain in the query
//	@Tags			domains
//	@Produce		json
//	@Param			domain	path		string	true	"domain name"	example(brad.crypto)
//	@Param			ticker	path		string	true	"currency ticker"	example(ETH)
//	@Param			chain	query		string	false	"token chain"	example(ERC20)
//	@Success		200		{string}	string
//	@Failure		404
//	@Router			/domains/{domain}/addr/{ticker} [get]
func (h *handler) addr(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Domain string `param:"domain" validate:"required"`
		Ticker string `param:"ticker" validate:"required,alphanum"`
		Chain  string `query:"chain" validate:"omitempty,alphanum"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	var (
		res string
		err error
	)
	if p.Chain != "" {
		res, err = h.resolution.MultiChainAddr(ctx, p.Domain, p.Ticker, p.Chain)
	} else {
		res, err = h.resolution.Addr(ctx, p.Domain, p.Ticker)
	}
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// reverse
//
//	@Summary	Reverse resolve an address
//	@Tags		reverse
//	@Produce	json
//	@Param		address		path		string	true	"address"	example(0xb0E7a465D255aE83eb7F8a50504F3867B945164C)
//	@Param		currency	query		string	false	"currency, ETH when omitted"
//	@Success	200			{string}	string
//	@Failure	400
//	@Failure	501
//	@Router		/reverse/{address} [get]
func (h *handler) reverse(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address  string `param:"address" validate:"required,address"`
		Currency string `query:"currency"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Currency == "" {
		p.Currency = "ETH"
	}

	name, err := h.resolution.Reverse(ctx, p.Address, p.Currency)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, name)
}

func (h *handler) childhash(c echo.Context) error {
	type payload struct {
		Parent  string `query:"parent" validate:"required"`
		Label   string `query:"label" validate:"required"`
		Service string `query:"service" validate:"required"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	hash, err := h.resolution.Childhash(p.Parent, p.Label, domain.ServiceName(p.Service))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, hash)
}

// batchOwners
//
//	@Summary	Get owners of many domains
//	@Tags		domains
//	@Accept		json
//	@Produce	json
//	@Param		body	body		object{domains=[]string}	true	"domains"
//	@Success	200		{object}	map[string]string
//	@Failure	400
//	@Router		/owners [post]
func (h *handler) batchOwners(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Domains []string `json:"domains" validate:"required,min=1,max=100,dive,required"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	owners, err := h.resolution.BatchOwners(ctx, p.Domains)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, owners)
}
