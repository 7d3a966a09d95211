package tlsutil_test

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NuriAnaliserDev/myCyberapp/pkg/tlsutil"
)

func TestGenerateDevCertificates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, tlsutil.GenerateDevCertificates([]string{"localhost", "127.0.0.1"}, dir))

	serverCfg, err := tlsutil.ServerConfig(filepath.Join(dir, tlsutil.ServerFile), filepath.Join(dir, tlsutil.ServerKeyFile))
	require.NoError(t, err)
	require.Len(t, serverCfg.Certificates, 1)

	clientCfg, err := tlsutil.ClientConfig(filepath.Join(dir, tlsutil.CAFile), false)
	require.NoError(t, err)
	require.NotNil(t, clientCfg.RootCAs)

	raw, err := os.ReadFile(filepath.Join(dir, tlsutil.ServerFile))
	require.NoError(t, err)
	block, _ := pem.Decode(raw)
	require.NotNil(t, block)
	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)

	assert.Equal(t, []string{"localhost"}, cert.DNSNames)
	require.Len(t, cert.IPAddresses, 1)
	assert.Equal(t, "127.0.0.1", cert.IPAddresses[0].String())

	_, err = cert.Verify(x509.VerifyOptions{DNSName: "localhost", Roots: clientCfg.RootCAs})
	assert.NoError(t, err)

	_, err = tlsutil.ServerCredentials(filepath.Join(dir, tlsutil.ServerFile), filepath.Join(dir, tlsutil.ServerKeyFile))
	assert.NoError(t, err)
	_, err = tlsutil.ClientCredentials(filepath.Join(dir, tlsutil.CAFile), false)
	assert.NoError(t, err)
}

func TestClientConfig_BadCA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(path, []byte("not a cert"), 0o600))

	_, err := tlsutil.ClientConfig(path, false)
	require.Error(t, err)

	_, err = tlsutil.ClientConfig(filepath.Join(t.TempDir(), "missing.pem"), false)
	require.Error(t, err)
}

func TestServerConfig_Missing(t *testing.T) {
	_, err := tlsutil.ServerConfig("nope.pem", "nope-key.pem")
	require.Error(t, err)
}
