package middleware

import (
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type, x-dev-secret"
	corsAllowMethods = "POST, OPTIONS"
)

// originRule é um predicado da política; as regras são avaliadas em ordem e a primeira que aceitar vence.
type originRule struct {
	name  string
	match func(raw string, u *url.URL) bool
}

// Policy é a política de origens: lista estática, domínios confiáveis (https) e redes privadas para desenvolvimento.
type Policy struct {
	AllowedOrigins      []string `yaml:"allowed_origins"`
	TrustedDomains      []string `yaml:"trusted_domains"`
	AllowPrivateNetwork bool     `yaml:"allow_private_network"`

	rules []originRule
}

// NewPolicy monta a política com as regras na ordem: estática, domínio confiável, rede privada.
func NewPolicy(allowedOrigins, trustedDomains []string, allowPrivateNetwork bool) *Policy {
	p := &Policy{
		AllowedOrigins:      allowedOrigins,
		TrustedDomains:      trustedDomains,
		AllowPrivateNetwork: allowPrivateNetwork,
	}
	p.compile()
	return p
}

// LoadPolicyFile sobrescreve os campos de base com os presentes no YAML
func LoadPolicyFile(path string, base *Policy) (*Policy, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler política de CORS %s", path)
	}

	p := &Policy{
		AllowedOrigins:      base.AllowedOrigins,
		TrustedDomains:      base.TrustedDomains,
		AllowPrivateNetwork: base.AllowPrivateNetwork,
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(content))), p); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar política de CORS %s", path)
	}

	p.compile()
	return p, nil
}

func (p *Policy) compile() {
	p.rules = []originRule{
		{name: "static", match: p.matchStatic},
		{name: "trusted_domain", match: p.matchTrustedDomain},
	}
	if p.AllowPrivateNetwork {
		p.rules = append(p.rules, originRule{name: "private_network", match: matchPrivateNetwork})
	}
}

// Allows indica se a origem passa em alguma regra da política
func (p *Policy) Allows(origin string) bool {
	return p.MatchedRule(origin) != ""
}

// MatchedRule devolve o nome da regra que aceitou a origem, ou "" se nenhuma aceitou
func (p *Policy) MatchedRule(origin string) string {
	if origin == "" {
		return ""
	}

	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}

	for _, rule := range p.rules {
		if rule.match(origin, u) {
			return rule.name
		}
	}
	return ""
}

// ResolveOrigin devolve a própria origem se aceita, senão a primeira origem estática
func (p *Policy) ResolveOrigin(origin string) string {
	if p.Allows(origin) {
		return origin
	}
	if len(p.AllowedOrigins) > 0 {
		return p.AllowedOrigins[0]
	}
	return ""
}

func (p *Policy) matchStatic(raw string, _ *url.URL) bool {
	for _, allowed := range p.AllowedOrigins {
		if raw == allowed {
			return true
		}
	}
	return false
}

func (p *Policy) matchTrustedDomain(_ string, u *url.URL) bool {
	if u.Scheme != "https" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	for _, domain := range p.TrustedDomains {
		domain = strings.ToLower(domain)
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

func matchPrivateNetwork(_ string, u *url.URL) bool {
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := u.Hostname()
	if host == "localhost" || host == "127.0.0.1" {
		return true
	}
	if strings.Contains(host, ":") {
		return false
	}

	ip := net.ParseIP(host)
	if ip == nil || ip.To4() == nil {
		return false
	}
	// 10/8, 172.16/12 e 192.168/16
	return ip.IsPrivate()
}

// Cors escreve os cabeçalhos da política em toda resposta; OPTIONS termina aqui sem corpo.
func Cors(policy *Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			if allowOrigin := policy.ResolveOrigin(r.Header.Get("Origin")); allowOrigin != "" {
				header.Set("Access-Control-Allow-Origin", allowOrigin)
			}
			header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			header.Set("Access-Control-Allow-Methods", corsAllowMethods)
			header.Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
